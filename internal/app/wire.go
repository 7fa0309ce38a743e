package app

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"qgcalc/internal/domain"
	"qgcalc/internal/remote"
	"qgcalc/internal/services/calculator"
	"qgcalc/internal/services/history"
	"qgcalc/internal/services/theme"
	"qgcalc/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Store   domain.KVStore
	Files   *store.FileStore // nil unless Backend is json
	History domain.HistoryService // held by calcd when RemoteURL is set
	Theme   *theme.Service
	Calc    *calculator.Service
	Remote  *remote.Client // nil unless RemoteURL is set
	HTTP    *http.Client

	closers []io.Closer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &Wire{HTTP: cfg.HTTP}
	if w.HTTP == nil {
		w.HTTP = http.DefaultClient
	}

	kv, err := w.openStore(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Passphrase != "" {
		enc, err := store.NewEncryptedStore(kv, cfg.Passphrase)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		kv = enc
	}
	w.Store = kv

	// With a remote service both evaluation and history live there; the
	// local store keeps only the theme.
	var ev domain.Evaluator
	if cfg.RemoteURL != "" {
		w.Remote = remote.New(cfg.RemoteURL, w.HTTP)
		w.History = remote.NewHistory(w.Remote)
		ev = w.Remote
	} else {
		w.History = history.New(kv, cfg.HistoryLimit)
	}
	w.Theme = theme.New(kv)
	w.Calc = calculator.New(w.History, ev)
	return w, nil
}

func (w *Wire) openStore(cfg Config) (domain.KVStore, error) {
	switch cfg.Backend {
	case BackendMemory:
		return store.NewMemoryStore(), nil
	case BackendSQLite:
		db, err := store.OpenSQLite(filepath.Join(cfg.Home, store.SQLiteFile))
		if err != nil {
			return nil, fmt.Errorf("sqlite backend: %w", err)
		}
		w.closers = append(w.closers, db)
		return db, nil
	default:
		w.Files = store.NewFileStore(cfg.Home)
		return w.Files, nil
	}
}

// Close releases the storage backend.
func (w *Wire) Close() error {
	var first error
	for _, c := range w.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	w.closers = nil
	return first
}
