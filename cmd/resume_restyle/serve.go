package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-restyle/internal/config"
	"github.com/jonathan/resume-restyle/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for extracting, rendering and exporting resumes.`,
	RunE:  runServe,
}

var (
	serveConfigPath   string
	serveAddr         string
	serveTemplatesDir string
	serveUseRemote    bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	serveCmd.Flags().StringVar(&serveTemplatesDir, "templates-dir", "", "Directory of extra .html templates registered at startup")
	serveCmd.Flags().BoolVar(&serveUseRemote, "remote", false, "Extract with Gemini, falling back to local heuristics on failure")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("templates-dir") {
		cfg.TemplatesDir = serveTemplatesDir
	}
	if cmd.Flags().Changed("remote") {
		cfg.UseRemote = serveUseRemote
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	srv, err := server.New(server.Config{
		Addr:           cfg.Addr,
		APIKey:         cfg.APIKey,
		UseRemote:      cfg.UseRemote,
		ModelTier:      cfg.ModelTier,
		RemoteTimeout:  time.Duration(cfg.RemoteTimeout) * time.Second,
		MaxUploadBytes: cfg.MaxUploadBytes,
		TemplatesDir:   cfg.TemplatesDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
