package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"simple name", []string{"Jane Doe"}, "Jane Doe"},
		{"middle initial", []string{"John A. Smith"}, "John A. Smith"},
		{"all caps", []string{"JANE DOE"}, "JANE DOE"},
		{"hyphenated surname", []string{"Mary Smith-Jones"}, "Mary Smith-Jones"},
		{"skips document title", []string{"Resume", "Jane Doe"}, "Jane Doe"},
		{"skips curriculum vitae", []string{"Curriculum Vitae", "Jane Doe"}, "Jane Doe"},
		{"skips email line", []string{"jane@example.com", "Jane Doe"}, "Jane Doe"},
		{"skips url line", []string{"https://janedoe.dev", "Jane Doe"}, "Jane Doe"},
		{"skips piped contact line", []string{"Jane Doe | Engineer", "Jane Doe"}, "Jane Doe"},
		{"rejects leading digit", []string{"123 Main Street"}, ""},
		{"rejects overlong line", []string{strings.Repeat("Xy ", 30)}, ""},
		{"gives up past scan window", []string{"a", "b", "c", "d", "e", "f", "g", "Jane Doe"}, ""},
		{"no match", []string{"just lowercase prose"}, ""},
		{"empty input", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractName(tt.lines))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"plain", "contact: jane@example.com", "jane@example.com"},
		{"dotted local part", "john.smith@email.com", "john.smith@email.com"},
		{"plus tag", "jane+jobs@example.co.uk", "jane+jobs@example.co.uk"},
		{"first of several", "a@x.com b@y.com", "a@x.com"},
		{"rejects short tld", "file@v1.2 nothing", ""},
		{"absent", "no email here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"north american parens", "(415) 555-0199", "(415) 555-0199"},
		{"dashed", "415-555-0199", "415-555-0199"},
		{"dotted with country code", "+1.415.555.0199", "+1.415.555.0199"},
		{"labeled", "Phone: (415) 555-0199", "(415) 555-0199"},
		{"mobile label", "Mobile: 415 555 0199", "415 555 0199"},
		{"international plus", "+44 20 7946 0958", "+44 20 7946 0958"},
		{"too few digits", "call 555-0199", ""},
		{"absent", "no number", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractPhone(tt.text))
		})
	}
}

func TestExtractPhonePrefersLongestQualifying(t *testing.T) {
	text := "(415) 555-0199 and also +1 (415) 555-0142"

	phone := extractPhone(text)

	assert.Equal(t, "+1 (415) 555-0142", phone)
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"city state", "San Francisco, CA", "San Francisco, CA"},
		{"city state in prose", "lives in sunny San Francisco, CA these days", "San Francisco, CA"},
		{"city country", "from London, United Kingdom", "London, United Kingdom"},
		{"labeled", "Location: Remote, USA", "Remote, USA"},
		{"rejects commaless", "San Francisco", ""},
		{"absent", "nothing here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractLocation(tt.text))
		})
	}
}

func TestExtractWebsite(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"https url", "portfolio at https://janedoe.dev", "https://janedoe.dev"},
		{"bare www gets scheme", "see www.janedoe.dev for more", "https://www.janedoe.dev"},
		{"skips linkedin", "https://linkedin.com/in/jane and https://janedoe.dev", "https://janedoe.dev"},
		{"trailing punctuation trimmed", "visit https://janedoe.dev.", "https://janedoe.dev"},
		{"absent", "no links", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractWebsite(tt.text))
		})
	}
}

func TestExtractLinkedIn(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"full url", "https://www.linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"bare host gets scheme", "linkedin.com/in/jane-doe", "https://linkedin.com/in/jane-doe"},
		{"labeled", "LinkedIn: linkedin.com/in/jane-doe", "https://linkedin.com/in/jane-doe"},
		{"trailing slash stripped", "linkedin.com/in/jane/", "https://linkedin.com/in/jane"},
		{"absent", "no profile", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractLinkedIn(tt.text))
		})
	}
}
