package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "mint-cli.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mint-cli.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
LedgerURL = "https://example.test/api"
TokenID = "tok"
PemFile = "other.pem"
MaxAmount = "250"
JitterLowBps = 9000
JitterHighBps = 11000
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, &Config{
		LedgerURL:     "https://example.test/api",
		TokenID:       "tok",
		PemFile:       "other.pem",
		MaxAmount:     "250",
		JitterLowBps:  9_000,
		JitterHighBps: 11_000,
	}, cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mint-cli.toml")
	require.NoError(t, os.WriteFile(path, []byte(`MaxAmount = "42"`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "42", cfg.MaxAmount)
	require.Equal(t, DefaultLedgerURL, cfg.LedgerURL)
	require.Equal(t, int64(DefaultJitterLowBps), cfg.JitterLowBps)
	require.Equal(t, int64(DefaultJitterHighBps), cfg.JitterHighBps)
}

func TestLoadRejectsInvalidJitterBand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mint-cli.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
JitterLowBps = 12000
JitterHighBps = 8000
`), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, "JitterHighBps")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mint-cli.toml")
	require.NoError(t, os.WriteFile(path, []byte(`LedgerURL = `), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
