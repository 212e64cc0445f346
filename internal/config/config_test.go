package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"template": "modern",
		"api_key": "test-key",
		"use_remote": true,
		"remote_timeout": 15,
		"addr": ":9090"
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "modern", cfg.Template)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.UseRemote)
	assert.Equal(t, 15, cfg.RemoteTimeout)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, "{ not json }")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{"defaults", Defaults(), false},
		{"negative timeout", Config{RemoteTimeout: -1}, true},
		{"negative upload cap", Config{MaxUploadBytes: -1}, true},
		{"bad model tier", Config{ModelTier: "turbo"}, true},
		{"lite tier", Config{ModelTier: "lite"}, false},
		{"missing templates dir", Config{TemplatesDir: "/nonexistent/dir"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_TemplatesDirExists(t *testing.T) {
	cfg := Config{TemplatesDir: t.TempDir()}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "from-file", RemoteTimeout: 5}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "from-file", merged.APIKey)
	assert.Equal(t, 5, merged.RemoteTimeout)
	assert.Equal(t, "classic", merged.Template)
	assert.Equal(t, "standard", merged.ModelTier)
	assert.Equal(t, ":8080", merged.Addr)
	assert.Equal(t, int64(10<<20), merged.MaxUploadBytes)
}

func TestMergeWithDefaults_FileValuesWin(t *testing.T) {
	cfg := Config{Template: "minimal", Addr: ":3000"}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "minimal", merged.Template)
	assert.Equal(t, ":3000", merged.Addr)
}
