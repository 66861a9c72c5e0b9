package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port    int    `json:"port"`
	Dataset string `json:"dataset"`
	Nested  struct {
		Rps float64 `json:"rps"`
	} `json:"nested"`
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "config.json5")

	require.NoError(t, os.WriteFile(base, []byte(`{
		// comments are allowed
		port: 8000,
		dataset: "public/politicians.json",
		nested: { rps: 5 },
	}`), 0600))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.local.json5"),
		[]byte(`{ port: 9000 }`),
		0600,
	))

	cfg, err := ReadConfig[testConfig](base)
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, "public/politicians.json", cfg.Dataset)
	require.Equal(t, 5.0, cfg.Nested.Rps)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigInvalid(t *testing.T) {
	base := filepath.Join(t.TempDir(), "config.json5")
	require.NoError(t, os.WriteFile(base, []byte(`{ port: `), 0600))

	_, err := ReadConfig[testConfig](base)
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

func TestLocalName(t *testing.T) {
	require.Equal(t, "a/config.local.json5", localName("a/config.json5"))
	require.Equal(t, "telemetry.local", localName("telemetry"))
}
