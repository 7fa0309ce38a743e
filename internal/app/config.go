package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"qgcalc/internal/services/history"
)

// ConfigFile is the optional config file name inside Home.
const ConfigFile = "config.json"

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home         string       `json:"-"`                    // data directory, e.g. $HOME/.qgcalc
	Backend      string       `json:"backend"`              // json, sqlite or memory
	Passphrase   string       `json:"-"`                    // encrypts stored values when set
	HistoryLimit int          `json:"history_limit"`        // records kept, default 50
	LogLevel     string       `json:"log_level"`            // debug, info, warn, error, none
	LogPath      string       `json:"log_path,omitempty"`   // empty disables logging
	RemoteURL    string       `json:"remote_url,omitempty"` // calcd base URL, e.g. http://127.0.0.1:8080
	HTTP         *http.Client `json:"-"`                    // optional; defaults to http.DefaultClient
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(home string) Config {
	return Config{
		Home:         home,
		Backend:      BackendJSON,
		HistoryLimit: history.DefaultLimit,
		LogLevel:     "info",
	}
}

// DefaultHome returns ~/.qgcalc.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".qgcalc"), nil
}

// LoadConfig reads home/config.json over the defaults. A missing file is
// not an error.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)

	b, err := os.ReadFile(filepath.Join(home, ConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", ConfigFile, err)
	}
	cfg.Home = home
	if cfg.Backend == "" {
		cfg.Backend = BackendJSON
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = history.DefaultLimit
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
		return nil
	}
	return fmt.Errorf("unknown backend %q (want %s, %s or %s)", c.Backend, BackendJSON, BackendSQLite, BackendMemory)
}
