// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-restyle/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// lowConfidenceThreshold marks fields worth reviewing by hand
	lowConfidenceThreshold = 0.5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a human-readable summary of the extracted record with
// per-field confidence scores. Empty fields are skipped.
func (p *Printer) PrintRecord(record types.ResumeRecord, confidence types.ConfidenceMap) {
	if record.IsEmpty() {
		p.printBox("EXTRACTED RESUME RECORD", "(no fields extracted)")
		return
	}

	var sb strings.Builder
	for _, key := range types.FieldKeys {
		value := record.Field(key)
		if value == "" {
			continue
		}
		value = firstLine(value)
		if len(value) > 34 {
			value = value[:31] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-14s %.2f  %s\n", key, confidence[key], value))
	}

	p.printBox("EXTRACTED RESUME RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLowConfidence lists non-empty fields whose confidence falls below the
// review threshold.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLowConfidence(record types.ResumeRecord, confidence types.ConfidenceMap) {
	var flagged []string
	for _, key := range types.FieldKeys {
		if record.Field(key) == "" {
			continue
		}
		if confidence[key] < lowConfidenceThreshold {
			flagged = append(flagged, key)
		}
	}

	if len(flagged) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO LOW-CONFIDENCE FIELDS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d fields worth reviewing:\n\n", len(flagged)))
	for i, key := range flagged {
		sb.WriteString(fmt.Sprintf("⚠ %s (%.2f)\n", key, confidence[key]))
		if i < len(flagged)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LOW-CONFIDENCE FIELDS", sb.String())
}

// PrintDocumentStats outputs a short summary of the substituted document.
func (p *Printer) PrintDocumentStats(document string) {
	lines := strings.Count(document, "\n") + 1
	content := fmt.Sprintf("Characters: %d\nLines:      %d", len(document), lines)
	p.printBox("RENDERED DOCUMENT", content)
}

// firstLine returns the text up to the first newline.
func firstLine(value string) string {
	if idx := strings.IndexByte(value, '\n'); idx >= 0 {
		return value[:idx]
	}
	return value
}
