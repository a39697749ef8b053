package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamesite.json5")
	err := os.WriteFile(path, []byte(`{
		backloggery: { username: "from-file" },
		howlongtobeat: { base_url: "http://localhost:8080" },
	}`), 0600)
	require.NoError(t, err)

	previous := *configPath
	*configPath = path
	t.Cleanup(func() { *configPath = previous })

	cfg, err := readConfig()
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.Backloggery.Username)
	require.Equal(t, "http://localhost:8080", cfg.HowLongToBeat.BaseUrl)
	require.Equal(t, 30*time.Second, cfg.timeout())

	t.Setenv(envUsername, "from-env")
	t.Setenv(envTimeout, "5")

	cfg, err = readConfig()
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Backloggery.Username)
	require.Equal(t, 5*time.Second, cfg.timeout())

	t.Setenv(envTimeout, "soon")
	_, err = readConfig()
	require.Error(t, err)
}

func TestBackloggeryClientNeedsUsername(t *testing.T) {
	_, err := newBackloggeryClient(Config{}, "")
	require.Error(t, err)

	client, err := newBackloggeryClient(Config{Backloggery: BackloggeryConfig{Username: "someone"}}, "")
	require.NoError(t, err)
	require.Equal(t, "someone", client.Username)

	client, err = newBackloggeryClient(Config{Backloggery: BackloggeryConfig{Username: "someone"}}, "override")
	require.NoError(t, err)
	require.Equal(t, "override", client.Username)
}
