package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"qgcalc/internal/domain"
	"qgcalc/internal/logger"
)

const (
	// Key is the store key holding the serialised history.
	Key = "qg_history"
	// DefaultLimit is the retention count used when none is configured.
	DefaultLimit = 50
)

// ErrNoEntry is returned by Recall for an index outside the history.
var ErrNoEntry = errors.New("no such history entry")

// Service manages the evaluation history on top of a key-value store.
type Service struct {
	kv    domain.KVStore
	limit int
	log   *logger.Logger

	mu      sync.Mutex
	records []domain.HistoryRecord
	loaded  bool
}

var _ domain.HistoryService = (*Service)(nil)

// New returns a history service keeping at most limit records in kv. A
// non-positive limit selects DefaultLimit.
func New(kv domain.KVStore, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{kv: kv, limit: limit, log: logger.Global().WithPrefix("history")}
}

// Limit returns the retention count.
func (s *Service) Limit() int { return s.limit }

// Reload discards the in-memory copy and reads the store again.
func (s *Service) Reload() ([]domain.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

// Append adds rec as the most recent record and persists the trimmed list.
// When the store cannot be read or written, rec is still kept in memory and
// the storage error is returned.
func (s *Service) Append(rec domain.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loadErr := s.ensureLoaded()
	s.records = append(s.records, rec)
	if n := len(s.records) - s.limit; n > 0 {
		s.records = append([]domain.HistoryRecord(nil), s.records[n:]...)
	}
	if loadErr != nil {
		// Writing now would overwrite entries we could not read.
		return fmt.Errorf("history not saved: %w", loadErr)
	}
	return s.save()
}

// List returns the records, most recent last.
func (s *Service) List() ([]domain.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.ensureLoaded()
	return s.snapshot(), err
}

// Clear removes every record.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.loaded = true
	return s.save()
}

// Recall returns the result stored at index, where 0 is the most recent.
func (s *Service) Recall(index int) (float64, error) {
	recs, err := s.List()
	if index < 0 || index >= len(recs) {
		if err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %d of %d", ErrNoEntry, index, len(recs))
	}
	return recs[len(recs)-1-index].Result, nil
}

func (s *Service) snapshot() []domain.HistoryRecord {
	return append([]domain.HistoryRecord(nil), s.records...)
}

func (s *Service) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	b, ok, err := s.kv.Get(Key)
	if err != nil {
		return err
	}
	var recs []domain.HistoryRecord
	if ok {
		if err := json.Unmarshal(b, &recs); err != nil {
			// Unreadable history is dropped, like a fresh install.
			s.log.Warn("discarding corrupt history: %v", err)
			recs = nil
		}
	}
	if n := len(recs) - s.limit; n > 0 {
		recs = recs[n:]
	}
	s.records = recs
	s.loaded = true
	return nil
}

func (s *Service) save() error {
	recs := s.records
	if recs == nil {
		recs = []domain.HistoryRecord{}
	}
	b, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	if err := s.kv.Set(Key, b); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
