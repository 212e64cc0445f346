// Package extract parses unstructured resume text into a typed
// ResumeRecord using ordered heuristic pattern matching, section
// detection, and confidence scoring. Extraction is best-effort: a
// pattern that finds nothing yields an empty field, never an error.
package extract

import (
	"context"
	"strings"

	"github.com/jonathan/resume-restyle/internal/types"
)

// sectionFields are the record fields populated by section detection.
var sectionFields = []string{
	"summary", "experience", "education", "skills", "projects",
	"certifications", "languages", "achievements", "references",
}

// Extract parses resume text into a ResumeRecord and its confidence map.
// It is a pure function of the input: deterministic, no I/O, and it never
// fails. The worst case is an all-empty record with all-zero confidence.
func Extract(text string) (types.ResumeRecord, types.ConfidenceMap) {
	lines := strings.Split(text, "\n")

	record := types.ResumeRecord{
		Name:     extractName(lines),
		Email:    extractEmail(text),
		Phone:    extractPhone(text),
		Location: extractLocation(text),
		Website:  extractWebsite(text),
		LinkedIn: extractLinkedIn(text),
	}

	for _, field := range sectionFields {
		record.SetField(field, extractSection(lines, field))
	}

	// No dedicated skills section: fall back to the known-skill dictionary.
	if record.Skills == "" {
		record.Skills = skillsFallback(text)
	}

	return record, scoreRecord(record)
}

// Extractor is the extraction strategy selected at call time: the local
// heuristic engine, or a remote service that falls back to it.
type Extractor interface {
	ExtractRecord(ctx context.Context, text string) (types.ResumeRecord, types.ConfidenceMap, error)
}

// Local adapts the pure Extract function to the Extractor interface.
type Local struct{}

// ExtractRecord implements Extractor. It never returns an error.
func (Local) ExtractRecord(_ context.Context, text string) (types.ResumeRecord, types.ConfidenceMap, error) {
	record, confidence := Extract(text)
	return record, confidence, nil
}
