package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-restyle/internal/decode"
	"github.com/jonathan/resume-restyle/internal/extract"
	"github.com/jonathan/resume-restyle/internal/llm"
	"github.com/jonathan/resume-restyle/internal/observability"
	"github.com/jonathan/resume-restyle/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract structured fields from one or more resume files",
	Long: `Decode resume files (PDF, DOCX, DOC, TXT) and extract their fields into JSON.

With a single input and no --out-dir the result is printed to stdout. With
--out-dir, one <basename>.json file is written per input. Multiple inputs are
processed concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

var (
	extractOutDir      string
	extractAPIKey      string
	extractUseRemote   bool
	extractTier        string
	extractTimeout     int
	extractConcurrency int
	extractVerbose     bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractOutDir, "out-dir", "o", "", "Directory to write one JSON file per input (default: stdout)")
	extractCmd.Flags().BoolVar(&extractUseRemote, "remote", false, "Extract with Gemini, falling back to local heuristics on failure")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	extractCmd.Flags().StringVar(&extractTier, "tier", "", "Model tier: lite, standard or advanced")
	extractCmd.Flags().IntVar(&extractTimeout, "timeout", 0, "Seconds allowed for one model call")
	extractCmd.Flags().IntVar(&extractConcurrency, "concurrency", 4, "Maximum number of files processed in parallel")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted field summary to stderr")

	rootCmd.AddCommand(extractCmd)
}

// extractResult is the JSON document written per input file.
type extractResult struct {
	File       string              `json:"file"`
	Record     types.ResumeRecord  `json:"record"`
	Confidence types.ConfidenceMap `json:"confidence"`
}

func runExtract(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	if extractOutDir != "" {
		if err := os.MkdirAll(extractOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	extractor := buildCLIExtractor(ctx)

	results := make([]extractResult, len(args))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(extractConcurrency)

	for i, path := range args {
		g.Go(func() error {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			text, err := decode.Decode(path, content)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			record, confidence, err := extractor.ExtractRecord(gctx, text)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = extractResult{File: path, Record: record, Confidence: confidence}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		if extractVerbose {
			printer := observability.NewPrinter(os.Stderr)
			printer.PrintRecord(result.Record, result.Confidence)
			printer.PrintLowConfidence(result.Record, result.Confidence)
		}

		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		if extractOutDir == "" {
			fmt.Println(string(payload))
			continue
		}

		outPath := filepath.Join(extractOutDir, jsonOutputName(result.File))
		if err := os.WriteFile(outPath, payload, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		fmt.Printf("Wrote %s\n", outPath)
	}

	return nil
}

// buildCLIExtractor picks the remote extractor when requested and possible,
// local heuristics otherwise.
func buildCLIExtractor(ctx context.Context) extract.Extractor {
	if !extractUseRemote {
		return &extract.Local{}
	}

	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: --remote set but no API key available, using local heuristics")
		return &extract.Local{}
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create LLM client, using local heuristics: %v\n", err)
		return &extract.Local{}
	}

	remote := extract.NewRemote(client)
	if extractTier != "" {
		remote = remote.WithTier(llm.ModelTier(extractTier))
	}
	if extractTimeout > 0 {
		remote = remote.WithTimeout(time.Duration(extractTimeout) * time.Second)
	}
	return remote
}

// jsonOutputName maps an input path to its output file name.
func jsonOutputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
