package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromExplicitPath(t *testing.T) {
	path := writeFile(t, "config.yaml", strings.Join([]string{
		"api_key: yamlkey",
		"output: report.csv",
		"requests_per_second: 2",
	}, "\n"))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "yamlkey", cfg.APIKey)
	require.Equal(t, "report.csv", cfg.Output)
	require.Equal(t, 2.0, cfg.RequestsPerSecond)
	require.Equal(t, "config/key.txt", cfg.KeyFile, "defaults still apply")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "api_key: yamlkey\n")
	t.Setenv("YTSUM_API_KEY", "envkey")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "envkey", cfg.APIKey)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("YTSUM_API_KEY", "envkey")
	t.Setenv("YTSUM_OUTPUT", "elsewhere.txt")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "envkey", cfg.APIKey)
	require.Equal(t, "elsewhere.txt", cfg.Output)
	require.Equal(t, 5.0, cfg.RequestsPerSecond)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsNegativeRate(t *testing.T) {
	path := writeFile(t, "config.yaml", "requests_per_second: -1\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadKeyFile(t *testing.T) {
	path := writeFile(t, "key.txt", "AIzaSyFakeKey123\n")
	key, err := LoadKeyFile(path)
	require.NoError(t, err)
	require.Equal(t, "AIzaSyFakeKey123", key)
}

func TestLoadKeyFileFirstTokenWins(t *testing.T) {
	path := writeFile(t, "key.txt", "AIzaSyFakeKey123 trailing comment\n")
	key, err := LoadKeyFile(path)
	require.NoError(t, err)
	require.Equal(t, "AIzaSyFakeKey123", key)
}

func TestLoadKeyFileNoNewline(t *testing.T) {
	path := writeFile(t, "key.txt", "AIzaSyFakeKey123")
	key, err := LoadKeyFile(path)
	require.NoError(t, err)
	require.Equal(t, "AIzaSyFakeKey123", key)
}

func TestLoadKeyFileEmpty(t *testing.T) {
	path := writeFile(t, "key.txt", "")
	_, err := LoadKeyFile(path)
	require.ErrorContains(t, err, "empty")
}

func TestLoadKeyFileTooLarge(t *testing.T) {
	path := writeFile(t, "key.txt", strings.Repeat("x", 200))
	_, err := LoadKeyFile(path)
	require.ErrorContains(t, err, "too large")
}

func TestLoadKeyFileMissing(t *testing.T) {
	_, err := LoadKeyFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestLoadKeyFileOnlyWhitespace(t *testing.T) {
	path := writeFile(t, "key.txt", "   \n")
	_, err := LoadKeyFile(path)
	require.ErrorContains(t, err, "no key")
}
