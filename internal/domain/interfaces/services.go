package interfaces

import (
	"context"

	domaintypes "qgcalc/internal/domain/types"
)

// HistoryService keeps the list of successful evaluations.
type HistoryService interface {
	Append(record domaintypes.HistoryRecord) error
	List() ([]domaintypes.HistoryRecord, error)
	Clear() error
	Recall(index int) (float64, error)
	// Reload drops any cached copy and reads the list again.
	Reload() ([]domaintypes.HistoryRecord, error)
}

// ThemeService persists the renderer colour scheme.
type ThemeService interface {
	Current() (domaintypes.Theme, error)
	Set(theme domaintypes.Theme) error
	Toggle() (domaintypes.Theme, error)
}

// Evaluator computes the value of an expression, locally or over the wire.
type Evaluator interface {
	Evaluate(ctx context.Context, expression string) (float64, error)
}
