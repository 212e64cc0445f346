// Package pipeline provides the high-level orchestration for the resume
// restyling process: decode an uploaded resume, extract its fields, fill a
// template and export the result.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-restyle/internal/decode"
	"github.com/jonathan/resume-restyle/internal/export"
	"github.com/jonathan/resume-restyle/internal/extract"
	"github.com/jonathan/resume-restyle/internal/llm"
	"github.com/jonathan/resume-restyle/internal/rendering"
	"github.com/jonathan/resume-restyle/internal/templates"
	"github.com/jonathan/resume-restyle/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step names reported through ProgressCallback.
const (
	StepDecode     = "decode"
	StepExtract    = "extract"
	StepTemplate   = "template"
	StepSubstitute = "substitute"
	StepExport     = "export"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath    string
	TemplateName  string
	TemplatePath  string // Overrides TemplateName when set
	Format        export.Format
	APIKey        string
	UseRemote     bool
	ModelTier     string
	RemoteTimeout time.Duration
	Verbose       bool
	Store         *templates.Store
	Renderer      export.Renderer
	OnProgress    ProgressCallback
}

// Result holds everything one pipeline run produced.
type Result struct {
	RunID      string
	Record     types.ResumeRecord
	Confidence types.ConfidenceMap
	Document   string // Substituted template markup
	Output     []byte // Exported artifact in the requested format
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID})
	}
}

// Run executes the full decode, extract, substitute, export sequence.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	runID := uuid.NewString()
	if opts.Format == "" {
		opts.Format = export.FormatHTML
	}
	if opts.Store == nil {
		opts.Store = templates.NewStore()
	}

	fmt.Printf("Step 1/5: Decoding resume: %s...\n", opts.ResumePath)
	content, err := os.ReadFile(opts.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("reading resume failed: %w", err)
	}
	text, err := decode.Decode(opts.ResumePath, content)
	if err != nil {
		return nil, fmt.Errorf("decoding resume failed: %w", err)
	}
	emitProgress(&opts, runID, StepDecode, fmt.Sprintf("Decoded %d characters of resume text", len(text)))

	fmt.Printf("Step 2/5: Extracting resume fields...\n")
	extractor := buildExtractor(ctx, &opts)
	record, confidence, err := extractor.ExtractRecord(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extracting fields failed: %w", err)
	}
	if opts.Verbose {
		for _, key := range types.FieldKeys {
			if value := record.Field(key); value != "" {
				log.Printf("[VERBOSE] %s (%.2f): %.60s", key, confidence[key], value)
			}
		}
	}
	emitProgress(&opts, runID, StepExtract, fmt.Sprintf("Extracted fields for %q", record.Name))

	fmt.Printf("Step 3/5: Loading template...\n")
	markup, err := loadTemplate(&opts)
	if err != nil {
		return nil, fmt.Errorf("loading template failed: %w", err)
	}
	emitProgress(&opts, runID, StepTemplate, "Loaded template markup")

	fmt.Printf("Step 4/5: Substituting placeholders...\n")
	document, err := rendering.Apply(markup, record)
	if err != nil {
		return nil, fmt.Errorf("substituting placeholders failed: %w", err)
	}
	emitProgress(&opts, runID, StepSubstitute, "Substituted record into template")

	fmt.Printf("Step 5/5: Exporting as %s...\n", opts.Format)
	output, err := export.Export(ctx, opts.Renderer, document, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("exporting document failed: %w", err)
	}
	emitProgress(&opts, runID, StepExport, fmt.Sprintf("Exported %d bytes", len(output)))

	return &Result{
		RunID:      runID,
		Record:     record,
		Confidence: confidence,
		Document:   document,
		Output:     output,
	}, nil
}

// buildExtractor picks the remote extractor when configured and possible,
// otherwise the local heuristics.
func buildExtractor(ctx context.Context, opts *RunOptions) extract.Extractor {
	if !opts.UseRemote || opts.APIKey == "" {
		return &extract.Local{}
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
	if err != nil {
		log.Printf("Warning: failed to create LLM client, using local heuristics: %v", err)
		return &extract.Local{}
	}

	remote := extract.NewRemote(client)
	if opts.ModelTier != "" {
		remote = remote.WithTier(llm.ModelTier(opts.ModelTier))
	}
	if opts.RemoteTimeout > 0 {
		remote = remote.WithTimeout(opts.RemoteTimeout)
	}
	return remote
}

// loadTemplate reads the template from disk when a path is given, otherwise
// from the catalog.
func loadTemplate(opts *RunOptions) (string, error) {
	if opts.TemplatePath != "" {
		content, err := os.ReadFile(opts.TemplatePath)
		if err != nil {
			return "", fmt.Errorf("reading template file failed: %w", err)
		}
		return decode.DecodeTemplate(opts.TemplatePath, content)
	}

	name := opts.TemplateName
	if name == "" {
		name = "classic"
	}
	return opts.Store.Get(name)
}
