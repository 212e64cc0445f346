package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-restyle/internal/decode"
	"github.com/jonathan/resume-restyle/internal/export"
	"github.com/jonathan/resume-restyle/internal/rendering"
	"github.com/jonathan/resume-restyle/internal/templates"
	"github.com/jonathan/resume-restyle/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Substitute an extracted record into a template",
	Long: `Read a record JSON file (as produced by the extract command), substitute it
into a template and write the result in the requested format.`,
	RunE: runRender,
}

var (
	renderRecordPath string
	renderTemplate   string
	renderFormat     string
	renderOutput     string
)

func init() {
	renderCmd.Flags().StringVarP(&renderRecordPath, "record", "i", "", "Path to a record JSON file (required)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "classic", "Catalog template name, or path to a template file")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html, txt, pdf or docx")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output file path (default: stdout)")
	_ = renderCmd.MarkFlagRequired("record")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	record, err := loadRecord(renderRecordPath)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(renderFormat)
	if err != nil {
		return err
	}

	markup, err := loadTemplateRef(renderTemplate)
	if err != nil {
		return err
	}

	document, err := rendering.Apply(markup, record)
	if err != nil {
		return fmt.Errorf("substituting placeholders failed: %w", err)
	}

	var renderer export.Renderer
	if format == export.FormatPDF {
		renderer = export.NewRenderer()
	}
	output, err := export.Export(ctx, renderer, document, format)
	if err != nil {
		return fmt.Errorf("exporting document failed: %w", err)
	}

	if renderOutput == "" {
		_, err = os.Stdout.Write(output)
		return err
	}
	if err := os.WriteFile(renderOutput, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Wrote %s\n", renderOutput)
	return nil
}

// loadRecord reads a record JSON file, accepting both the bare record and the
// extract command's {file, record, confidence} envelope.
func loadRecord(path string) (types.ResumeRecord, error) {
	var record types.ResumeRecord

	data, err := os.ReadFile(path)
	if err != nil {
		return record, fmt.Errorf("failed to read record file: %w", err)
	}

	var envelope struct {
		Record *types.ResumeRecord `json:"record"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Record != nil && !envelope.Record.IsEmpty() {
		return *envelope.Record, nil
	}

	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("failed to parse record JSON: %w", err)
	}
	return record, nil
}

// loadTemplateRef resolves a template flag value to markup, from the catalog
// or from disk.
func loadTemplateRef(value string) (string, error) {
	name, path := splitTemplateRef(value)
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read template file: %w", err)
		}
		return decode.DecodeTemplate(path, content)
	}
	if name == "" {
		name = "classic"
	}
	return templates.NewStore().Get(name)
}
