package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults applied when no config file is present or a field is left empty.
const (
	DefaultLedgerURL = "https://alberto.app/api"
	DefaultTokenID   = "mqbh742x4s356ddaryrxaowt4wxtlocekzpufodvowrirfrqaaaaa3l"
	DefaultPemFile   = "minter.pem"
	DefaultMaxAmount = "100"

	DefaultJitterLowBps  = 8_000
	DefaultJitterHighBps = 12_000
)

// Config is the optional TOML configuration for mint-cli. Every field has a
// built-in default, so the file only needs to state what differs.
type Config struct {
	LedgerURL     string `toml:"LedgerURL"`
	TokenID       string `toml:"TokenID"`
	PemFile       string `toml:"PemFile"`
	MaxAmount     string `toml:"MaxAmount"`
	JitterLowBps  int64  `toml:"JitterLowBps"`
	JitterHighBps int64  `toml:"JitterHighBps"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LedgerURL:     DefaultLedgerURL,
		TokenID:       DefaultTokenID,
		PemFile:       DefaultPemFile,
		MaxAmount:     DefaultMaxAmount,
		JitterLowBps:  DefaultJitterLowBps,
		JitterHighBps: DefaultJitterHighBps,
	}
}

// Load reads the configuration from the given path. A missing file yields the
// defaults; a present but malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if strings.TrimSpace(cfg.LedgerURL) == "" {
		cfg.LedgerURL = DefaultLedgerURL
	}
	if strings.TrimSpace(cfg.TokenID) == "" {
		cfg.TokenID = DefaultTokenID
	}
	if strings.TrimSpace(cfg.PemFile) == "" {
		cfg.PemFile = DefaultPemFile
	}
	if strings.TrimSpace(cfg.MaxAmount) == "" {
		cfg.MaxAmount = DefaultMaxAmount
	}
	if cfg.JitterLowBps == 0 && cfg.JitterHighBps == 0 {
		cfg.JitterLowBps = DefaultJitterLowBps
		cfg.JitterHighBps = DefaultJitterHighBps
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JitterLowBps <= 0 {
		return fmt.Errorf("JitterLowBps must be positive, got %d", c.JitterLowBps)
	}
	if c.JitterHighBps <= c.JitterLowBps {
		return fmt.Errorf("JitterHighBps (%d) must exceed JitterLowBps (%d)", c.JitterHighBps, c.JitterLowBps)
	}
	return nil
}
