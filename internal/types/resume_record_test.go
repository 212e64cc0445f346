package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldKeysCoverEveryField(t *testing.T) {
	record := ResumeRecord{}
	for _, key := range FieldKeys {
		record.SetField(key, "x")
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var asMap map[string]string
	require.NoError(t, json.Unmarshal(data, &asMap))

	assert.Len(t, asMap, len(FieldKeys), "every field key should map to a JSON key")
	for _, key := range FieldKeys {
		assert.Equal(t, "x", asMap[key], "field %q should round-trip through SetField", key)
	}
}

func TestFieldAndSetField(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"name field", "name", "Jane Doe"},
		{"email field", "email", "jane@example.com"},
		{"linkedin field", "linkedin", "https://linkedin.com/in/jane"},
		{"achievements field", "achievements", "Hackathon winner"},
		{"references field", "references", "Available on request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record ResumeRecord
			record.SetField(tt.key, tt.value)
			assert.Equal(t, tt.value, record.Field(tt.key))
		})
	}
}

func TestSetFieldIgnoresUnknownKeys(t *testing.T) {
	var record ResumeRecord
	record.SetField("salary_expectation", "1M")

	assert.True(t, record.IsEmpty(), "unknown key should not mutate the record")
	assert.Equal(t, "", record.Field("salary_expectation"))
}

func TestIsEmpty(t *testing.T) {
	var record ResumeRecord
	assert.True(t, record.IsEmpty())

	record.Skills = "Go"
	assert.False(t, record.IsEmpty())
}

func TestJSONAlwaysEmitsAllFields(t *testing.T) {
	data, err := json.Marshal(ResumeRecord{Name: "Jane Doe"})
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(data, &asMap))

	for _, key := range FieldKeys {
		value, ok := asMap[key]
		require.True(t, ok, "field %q must always be present", key)
		_, isString := value.(string)
		assert.True(t, isString, "field %q must be a string, never null", key)
	}
}
