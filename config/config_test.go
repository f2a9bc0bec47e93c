package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir stands in for testing.T.Chdir, which needs Go 1.24; the local
// toolchain is older.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "INFO", settings.Log.Level)
	assert.Empty(t, settings.Log.File)
	assert.Empty(t, settings.Log.Format)
	assert.True(t, settings.Log.Timestamp)
	assert.Equal(t, "mock-model", settings.LLM.Model)
	assert.Equal(t, 1024, settings.LLM.MaxTokens)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AGENTKIT_LOG_LEVEL", "debug")
	t.Setenv("AGENTKIT_LOG_FILE", "logs/app.log")
	t.Setenv("AGENTKIT_LLM_MAX_TOKENS", "2048")

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", settings.Log.Level)
	assert.Equal(t, "logs/app.log", settings.Log.File)
	assert.Equal(t, 2048, settings.LLM.MaxTokens)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `log:
  level: WARNING
  timestamp: false
llm:
  model: test-model
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	chdir(t, dir)

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "WARNING", settings.Log.Level)
	assert.False(t, settings.Log.Timestamp)
	assert.Equal(t, "test-model", settings.LLM.Model)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, 1024, settings.LLM.MaxTokens)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	content := `log:
  level: ERROR
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	chdir(t, dir)
	t.Setenv("AGENTKIT_LOG_LEVEL", "DEBUG")

	settings, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", settings.Log.Level)
}

func TestLoadInvalidLevel(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AGENTKIT_LOG_LEVEL", "TRACE")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel")
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0o644))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr bool
	}{
		{"valid", func(s *Settings) {}, false},
		{"lowercase level accepted", func(s *Settings) { s.Log.Level = "warning" }, false},
		{"unknown level", func(s *Settings) { s.Log.Level = "VERBOSE" }, true},
		{"empty level", func(s *Settings) { s.Log.Level = "" }, true},
		{"empty model", func(s *Settings) { s.LLM.Model = "" }, true},
		{"zero max tokens", func(s *Settings) { s.LLM.MaxTokens = 0 }, true},
		{"excessive max tokens", func(s *Settings) { s.LLM.MaxTokens = 300000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{
				Log: LogSettings{Level: "INFO", Timestamp: true},
				LLM: LLMSettings{Model: "mock-model", MaxTokens: 1024},
			}
			tt.mutate(s)

			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
