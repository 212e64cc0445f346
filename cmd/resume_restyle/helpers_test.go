package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTemplateRef(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantName string
		wantPath string
	}{
		{name: "empty", value: "", wantName: "", wantPath: ""},
		{name: "catalog name", value: "classic", wantName: "classic", wantPath: ""},
		{name: "file with extension", value: "custom.html", wantName: "", wantPath: "custom.html"},
		{name: "relative path", value: filepath.Join("dir", "custom"), wantName: "", wantPath: filepath.Join("dir", "custom")},
		{name: "absolute path", value: filepath.Join(string(os.PathSeparator), "tmp", "t.html"), wantName: "", wantPath: filepath.Join(string(os.PathSeparator), "tmp", "t.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, path := splitTemplateRef(tt.value)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestJSONOutputName(t *testing.T) {
	assert.Equal(t, "resume.json", jsonOutputName("uploads/resume.pdf"))
	assert.Equal(t, "cv.json", jsonOutputName("cv.docx"))
	assert.Equal(t, "notes.json", jsonOutputName("notes"))
}

func TestLoadRecord(t *testing.T) {
	dir := t.TempDir()

	t.Run("bare record", func(t *testing.T) {
		path := filepath.Join(dir, "bare.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"Jane Doe","email":"jane@example.com"}`), 0644))

		record, err := loadRecord(path)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", record.Name)
		assert.Equal(t, "jane@example.com", record.Email)
	})

	t.Run("extract envelope", func(t *testing.T) {
		path := filepath.Join(dir, "envelope.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"file":"resume.pdf","record":{"name":"Jane Doe"},"confidence":{"name":0.95}}`), 0644))

		record, err := loadRecord(path)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", record.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadRecord(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{ not json"), 0644))

		_, err := loadRecord(path)
		assert.Error(t, err)
	})
}
