package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig_Success(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9090,
		"api_key": "test-key",
		"model_standard": "gemini-2.5-flash",
		"log_json": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.ModelStandard)
	assert.True(t, cfg.LogJSON)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	cfg := Config{Port: 8080, MaxUploadMB: 10}
	assert.NoError(t, cfg.Validate())

	cfg.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = Config{MaxUploadMB: -1}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "from-file"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, 10, merged.MaxUploadMB)
	assert.Equal(t, "from-file", merged.APIKey)

	cfg = Config{Port: 9999}
	merged = cfg.MergeWithDefaults(Defaults())
	assert.Equal(t, 9999, merged.Port)
}

func TestApplyEnv_FileWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "7070")

	cfg := Config{APIKey: "file-key"}
	cfg.ApplyEnv()
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, 7070, cfg.Port)

	cfg = Config{}
	cfg.ApplyEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
}
