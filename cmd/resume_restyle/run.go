package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-restyle/internal/config"
	"github.com/jonathan/resume-restyle/internal/export"
	"github.com/jonathan/resume-restyle/internal/observability"
	"github.com/jonathan/resume-restyle/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full resume restyle pipeline end-to-end",
	Long: `Orchestrates the entire restyle process: decode -> extract -> substitute -> export.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath string
	runResume     string
	runTemplate   string
	runFormat     string
	runOutput     string
	runAPIKey     string
	runUseRemote  bool
	runTier       string
	runTimeout    int
	runVerbose    bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to the resume file to restyle (PDF, DOCX, DOC or TXT)")
	runCommand.Flags().StringVarP(&runTemplate, "template", "t", "", "Catalog template name, or path to a template file")
	runCommand.Flags().StringVarP(&runFormat, "format", "f", "html", "Output format: html, txt, pdf or docx")
	runCommand.Flags().StringVarP(&runOutput, "out", "o", "", "Output file path (default: resume.<format>)")
	runCommand.Flags().BoolVar(&runUseRemote, "remote", false, "Extract with Gemini, falling back to local heuristics on failure")
	runCommand.Flags().StringVar(&runTier, "tier", "", "Model tier: lite, standard or advanced")
	runCommand.Flags().IntVar(&runTimeout, "timeout", 0, "Seconds allowed for one model call")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("template") {
		cfg.Template = runTemplate
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("remote") {
		cfg.UseRemote = runUseRemote
	}
	if cmd.Flags().Changed("tier") {
		cfg.ModelTier = runTier
	}
	if cmd.Flags().Changed("timeout") {
		cfg.RemoteTimeout = runTimeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Defaults())

	// Step 4: Validate required fields
	if runResume == "" {
		return fmt.Errorf("--resume is required")
	}

	format, err := export.ParseFormat(runFormat)
	if err != nil {
		return err
	}

	// Step 5: API Key handling (only needed for remote extraction)
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.UseRemote && cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required with --remote")
	}

	templateName, templatePath := splitTemplateRef(cfg.Template)

	opts := pipeline.RunOptions{
		ResumePath:    runResume,
		TemplateName:  templateName,
		TemplatePath:  templatePath,
		Format:        format,
		APIKey:        cfg.APIKey,
		UseRemote:     cfg.UseRemote,
		ModelTier:     cfg.ModelTier,
		RemoteTimeout: time.Duration(cfg.RemoteTimeout) * time.Second,
		Verbose:       cfg.Verbose,
	}
	if format == export.FormatPDF {
		opts.Renderer = export.NewRenderer()
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRecord(result.Record, result.Confidence)
		printer.PrintLowConfidence(result.Record, result.Confidence)
		printer.PrintDocumentStats(result.Document)
	}

	outPath := runOutput
	if outPath == "" {
		outPath = fmt.Sprintf("resume.%s", format)
	}
	if err := os.WriteFile(outPath, result.Output, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Done. Output: %s (run %s)\n", outPath, result.RunID)
	return nil
}

// splitTemplateRef decides whether a template value names a catalog entry or
// points at a file on disk. Catalog names never contain path separators or
// extensions.
func splitTemplateRef(value string) (name, path string) {
	if value == "" {
		return "", ""
	}
	if strings.ContainsRune(value, os.PathSeparator) || filepath.Ext(value) != "" {
		return "", value
	}
	return value, ""
}
