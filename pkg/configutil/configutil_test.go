package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Username string `json:"username"`
	BaseUrl  string `json:"base_url"`
	Timeout  int    `json:"timeout_seconds"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "gamesite.json5"), []byte(`{
		// comments and trailing commas are fine in json5
		username: "someone",
		base_url: "http://backloggery.com",
		timeout_seconds: 30,
	}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "gamesite.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{
		Username: "someone",
		BaseUrl:  "http://backloggery.com",
		Timeout:  30,
	}, cfg)

	err = os.WriteFile(filepath.Join(dir, "gamesite.local.json5"), []byte(`{
		username: "someone-else",
	}`), 0600)
	require.NoError(t, err)

	cfg, err = ReadConfig[testConfig](filepath.Join(dir, "gamesite.json5"))
	require.NoError(t, err)
	require.Equal(t, "someone-else", cfg.Username)
	require.Equal(t, "http://backloggery.com", cfg.BaseUrl)
	require.Equal(t, 30, cfg.Timeout)
}

func TestReadConfigNotExist(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "missing.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSplitExt(t *testing.T) {
	table := []struct {
		input  string
		prefix string
		ext    string
	}{
		{input: "config.json5", prefix: "config", ext: "json5"},
		{input: "config.local.json5", prefix: "config.local", ext: "json5"},
		{input: "config", prefix: "config", ext: ""},
	}

	for _, row := range table {
		prefix, ext := splitExt(row.input)
		require.Equal(t, row.prefix, prefix)
		require.Equal(t, row.ext, ext)
	}
}

func TestReadRecursivelyAbsolute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.json5")
	err := os.WriteFile(path, []byte(`{username: "abs"}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadRecursively[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "abs", cfg.Username)
}
