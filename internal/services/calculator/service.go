package calculator

import (
	"context"
	"sync"

	"qgcalc/internal/domain"
	"qgcalc/internal/editor"
	"qgcalc/internal/engine"
	"qgcalc/internal/logger"
)

// Local evaluates expressions in-process.
type Local struct{}

var _ domain.Evaluator = Local{}

func (Local) Evaluate(_ context.Context, expression string) (float64, error) {
	return engine.Evaluate(expression)
}

// Service serialises access to one editor session.
type Service struct {
	history   domain.HistoryService
	evaluator domain.Evaluator
	log       *logger.Logger

	mu sync.Mutex
	ed *editor.Editor
}

// New returns a service recording into history and evaluating whole
// expressions with ev. A nil ev selects Local.
func New(history domain.HistoryService, ev domain.Evaluator) *Service {
	if ev == nil {
		ev = Local{}
	}
	s := &Service{
		history:   history,
		evaluator: ev,
		log:       logger.Global().WithPrefix("calculator"),
	}
	s.ed = editor.New(s)
	return s
}

// Record implements editor.Recorder.
func (s *Service) Record(rec domain.HistoryRecord) {
	if err := s.history.Append(rec); err != nil {
		s.log.Warn("history append %q: %v", rec.Expression, err)
	}
}

// SubmitKey applies one key to the session.
func (s *Service) SubmitKey(k editor.Key) domain.DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.ed.Submit(k)
	if err := s.ed.Err(); err != nil && k == editor.KeyEquals {
		s.log.Debug("evaluate %q: %v", s.ed.Text(), err)
	}
	return d
}

// Press maps raw keyboard input to a key and applies it. It reports false,
// leaving the session untouched, for input that is not a calculator key.
func (s *Service) Press(input string) (domain.DisplayState, bool) {
	k, ok := editor.KeyFromInput(input)
	if !ok {
		return s.Display(), false
	}
	return s.SubmitKey(k), true
}

func (s *Service) Display() domain.DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.Display()
}

// Text returns the session's expression text.
func (s *Service) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.Text()
}

// Evaluate computes expression without touching the session or history.
func (s *Service) Evaluate(ctx context.Context, expression string) (float64, error) {
	return s.evaluator.Evaluate(ctx, expression)
}

// Calculate evaluates expression and records it on success.
func (s *Service) Calculate(ctx context.Context, expression string) (float64, error) {
	v, err := s.evaluator.Evaluate(ctx, expression)
	if err != nil {
		return 0, err
	}
	s.Record(domain.HistoryRecord{Expression: expression, Result: v})
	return v, nil
}

// Recall loads the history result at index (0 = most recent) into the
// session as new text.
func (s *Service) Recall(index int) (domain.DisplayState, error) {
	v, err := s.history.Recall(index)
	if err != nil {
		return s.Display(), err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ed.Load(v)
	return s.ed.Display(), nil
}

func (s *Service) History() ([]domain.HistoryRecord, error) { return s.history.List() }

// AppendHistory records rec as evaluated elsewhere.
func (s *Service) AppendHistory(rec domain.HistoryRecord) error { return s.history.Append(rec) }

func (s *Service) ClearHistory() error { return s.history.Clear() }
