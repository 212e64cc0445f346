// Package llm - extractor.go provides LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-restyle/internal/prompts"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ResumeFields")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Use an empty string for any field the text does not contain.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// ResumeFieldsSchema returns the extraction schema for resume documents.
// Every field is a plain string; multi-entry sections keep their original
// line structure inside the value.
func ResumeFieldsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "ResumeFields",
		Description: prompts.MustGet("extraction.json", "resume-parser-system"),
		Fields: []SchemaField{
			{Name: "name", Type: `"string"`, Description: "The candidate's full name", Required: true},
			{Name: "email", Type: `"string"`, Description: "Email address"},
			{Name: "phone", Type: `"string"`, Description: "Phone number, keep the original formatting"},
			{Name: "location", Type: `"string"`, Description: "City and state or city and country"},
			{Name: "website", Type: `"string"`, Description: "Personal website or portfolio URL"},
			{Name: "linkedin", Type: `"string"`, Description: "LinkedIn profile URL"},
			{Name: "summary", Type: `"string"`, Description: "Professional summary or objective, verbatim"},
			{Name: "experience", Type: `"string"`, Description: "Work experience section, verbatim with line breaks"},
			{Name: "education", Type: `"string"`, Description: "Education section, verbatim with line breaks"},
			{Name: "skills", Type: `"string"`, Description: "Skills as a comma-separated list"},
			{Name: "projects", Type: `"string"`, Description: "Projects section, verbatim with line breaks"},
			{Name: "certifications", Type: `"string"`, Description: "Certifications and licenses"},
			{Name: "languages", Type: `"string"`, Description: "Spoken languages"},
			{Name: "achievements", Type: `"string"`, Description: "Awards and achievements"},
			{Name: "references", Type: `"string"`, Description: "References section"},
		},
	}
}
