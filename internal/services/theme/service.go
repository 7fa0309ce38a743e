// Package theme persists the renderer colour scheme under the key "qg_theme".
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"qgcalc/internal/domain"
)

const Key = "qg_theme"

// Default is used when nothing valid is stored.
const Default = domain.ThemeDark

var ErrUnknownTheme = errors.New("unknown theme")

// Service reads and writes the current theme. The last known value is
// cached so Toggle keeps working when the store is down.
type Service struct {
	kv domain.KVStore

	mu      sync.Mutex
	current domain.Theme
	loaded  bool
}

var _ domain.ThemeService = (*Service)(nil)

func New(kv domain.KVStore) *Service { return &Service{kv: kv, current: Default} }

// Parse validates a theme name.
func Parse(s string) (domain.Theme, error) {
	t := domain.Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
	return t, nil
}

// Current returns the stored theme, or Default when none is stored. On a
// storage error the cached value is returned together with the error.
func (s *Service) Current() (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.load()
	return s.current, err
}

func (s *Service) Set(t domain.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current, s.loaded = t, true
	return s.save()
}

// Toggle switches between dark and light and returns the new theme.
func (s *Service) Toggle() (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		s.current = s.current.Toggled()
		return s.current, err
	}
	s.current = s.current.Toggled()
	return s.current, s.save()
}

func (s *Service) load() error {
	if s.loaded {
		return nil
	}
	b, ok, err := s.kv.Get(Key)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	s.loaded = true
	if !ok {
		return nil
	}
	// Older installs stored the bare name rather than a JSON string.
	var name string
	if json.Unmarshal(b, &name) != nil {
		name = string(b)
	}
	if t, err := Parse(name); err == nil {
		s.current = t
	}
	return nil
}

func (s *Service) save() error {
	b, err := json.Marshal(s.current.String())
	if err != nil {
		return err
	}
	if err := s.kv.Set(Key, b); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
