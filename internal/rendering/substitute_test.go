package rendering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-restyle/internal/types"
)

func sampleRecord() types.ResumeRecord {
	return types.ResumeRecord{
		Name:       "John A. Smith",
		Email:      "john.smith@email.com",
		Phone:      "(415) 555-0199",
		Location:   "San Francisco, CA",
		Summary:    "Engineer with a decade of backend experience.",
		Experience: "Senior Engineer at Acme Corp (2020-Present)",
		Education:  "B.S. Computer Science, State University",
		Skills:     "Go, Python, Docker",
	}
}

func TestApplyEmptyTemplate(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\n"} {
		_, err := Apply(text, sampleRecord())

		var emptyErr *TemplateEmptyError
		assert.ErrorAs(t, err, &emptyErr)
	}
}

func TestApplyBracketStyles(t *testing.T) {
	record := sampleRecord()

	tests := []struct {
		name     string
		template string
	}{
		{"double braces", "Contact: {{name}} / {{email}}"},
		{"single braces", "Contact: {name} / {email}"},
		{"square brackets", "Contact: [NAME] / [EMAIL]"},
		{"double angles", "Contact: <<NAME>> / <<EMAIL>>"},
		{"mixed case", "Contact: {{Name}} / [Email]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Apply(tt.template, record)

			require.NoError(t, err)
			assert.Equal(t, "Contact: John A. Smith / john.smith@email.com", result)
		})
	}
}

func TestApplyAliases(t *testing.T) {
	record := sampleRecord()

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"full_name", "{{full_name}}", "John A. Smith"},
		{"work_experience", "{{work_experience}}", record.Experience},
		{"professional_summary", "{{professional_summary}}", record.Summary},
		{"technical_skills", "[TECHNICAL_SKILLS]", record.Skills},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Apply(tt.template, record)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestApplySubstitutesEveryNonEmptyField(t *testing.T) {
	record := sampleRecord()
	template := "{{name}}\n{{email}}\n{{phone}}\n{{location}}\n\n{{summary}}\n\n{{experience}}\n\n{{education}}\n\n{{skills}}"

	result, err := Apply(template, record)
	require.NoError(t, err)

	for _, key := range types.FieldKeys {
		if value := record.Field(key); value != "" {
			assert.Contains(t, result, value, "field %q", key)
		}
	}
}

func TestApplyRemovesEmptyFieldPlaceholders(t *testing.T) {
	record := sampleRecord()
	record.Phone = ""

	result, err := Apply("Name: {{name}}\nPhone: {{phone}}\nEmail: {{email}}", record)
	require.NoError(t, err)

	assert.NotContains(t, result, "{{phone}}")
	assert.NotContains(t, result, "Phone:")
	assert.Contains(t, result, "Name: John A. Smith")
	assert.Contains(t, result, "Email: john.smith@email.com")
}

func TestApplyStripsUnknownPlaceholders(t *testing.T) {
	result, err := Apply("{{name}} {{favorite_color}} [SHOE_SIZE] <<MOTTO>>", sampleRecord())

	require.NoError(t, err)
	assert.Equal(t, "John A. Smith", result)
}

func TestApplyDatePlaceholder(t *testing.T) {
	now := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

	result, err := applyAt("Updated {{date}} / {{current_date}} / [TODAY]", sampleRecord(), now)

	require.NoError(t, err)
	assert.Equal(t, "Updated Mar 9, 2026 / Mar 9, 2026 / Mar 9, 2026", result)
}

func TestApplyIsDeterministic(t *testing.T) {
	template := "{{name}} | {{skills}}\n{{summary}}"
	record := sampleRecord()

	first, err := Apply(template, record)
	require.NoError(t, err)
	second, err := Apply(template, record)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestApplyCollapsesWhitespace(t *testing.T) {
	record := sampleRecord()
	record.Summary = ""
	record.Skills = ""

	result, err := Apply("{{name}}\n\n\n\n{{summary}}\n\n\n{{skills}}\n\n{{email}}", record)

	require.NoError(t, err)
	assert.Equal(t, "John A. Smith\n\njohn.smith@email.com", result)
}

func TestApplyStripsLabelOnlyLines(t *testing.T) {
	record := sampleRecord()
	record.LinkedIn = ""

	result, err := Apply("Name: {{name}}\nLinkedIn:\nEmail: {{email}}", record)

	require.NoError(t, err)
	assert.NotContains(t, result, "LinkedIn:")
	assert.Contains(t, result, "Name: John A. Smith")
}

func TestApplyHTMLCleanup(t *testing.T) {
	record := sampleRecord()
	record.Phone = ""
	record.LinkedIn = ""

	template := `<html><head><style>p { margin: 0; color: black; }</style></head><body>
<p>{{name}}</p>
<p>{{phone}}</p>
<p>LinkedIn: {{linkedin}}</p>
<p>{{email}}</p>
</body></html>`

	result, err := Apply(template, record)
	require.NoError(t, err)

	assert.Contains(t, result, "<p>John A. Smith</p>")
	assert.Contains(t, result, "<p>john.smith@email.com</p>")
	assert.NotContains(t, result, "<p></p>")
	assert.NotContains(t, result, "LinkedIn:")
	assert.Contains(t, result, "margin: 0", "inline styles must survive cleanup")
}

func TestApplyHTMLRemovesOrphanHeadings(t *testing.T) {
	record := sampleRecord()
	record.Projects = ""
	record.Certifications = ""

	template := `<html><body>
<h1>{{name}}</h1>
<h2>Experience</h2>
<p>{{experience}}</p>
<h2>Projects</h2>
<p>{{projects}}</p>
<h2>Certifications</h2>
<p>{{certifications}}</p>
</body></html>`

	result, err := Apply(template, record)
	require.NoError(t, err)

	assert.Contains(t, result, "<h2>Experience</h2>")
	assert.NotContains(t, result, "Projects")
	assert.NotContains(t, result, "Certifications")
	assert.Contains(t, result, "<h1>John A. Smith</h1>")
}

func TestApplyCleansDanglingSeparators(t *testing.T) {
	record := sampleRecord()
	record.Phone = ""

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "middle value removed",
			template: "{{email}} | {{phone}} | {{location}}",
			expected: "john.smith@email.com | San Francisco, CA",
		},
		{
			name:     "trailing value removed",
			template: "{{email}} | {{phone}}",
			expected: "john.smith@email.com",
		},
		{
			name:     "leading value removed",
			template: "{{phone}} | {{email}}",
			expected: "john.smith@email.com",
		},
		{
			name:     "inside markup",
			template: "<div><p>{{email}} | {{phone}} | {{location}}</p></div>",
			expected: "<p>john.smith@email.com | San Francisco, CA</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Apply(tt.template, record)

			require.NoError(t, err)
			assert.Contains(t, result, tt.expected)
		})
	}
}

func TestApplyHTMLRemovesEmptyRows(t *testing.T) {
	record := sampleRecord()
	record.Phone = ""

	template := `<div><table>
<tr><td>Email</td><td>{{email}}</td></tr>
<tr><td>{{phone}}</td><td>{{phone}}</td></tr>
</table></div>`

	result, err := Apply(template, record)
	require.NoError(t, err)

	assert.Contains(t, result, "john.smith@email.com")
	assert.Equal(t, 1, countSubstring(result, "<tr>"))
}

func countSubstring(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}
	return count
}
