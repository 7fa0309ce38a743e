package remote

import (
	"context"
	"fmt"
	"time"

	"qgcalc/internal/domain"
	"qgcalc/internal/services/history"
)

// History is a domain.HistoryService kept by a calcd instance, so every
// client of that service shares one list.
type History struct {
	c       *Client
	timeout time.Duration
}

var _ domain.HistoryService = (*History)(nil)

// NewHistory returns the history held by the service behind c.
func NewHistory(c *Client) *History {
	return &History{c: c, timeout: 10 * time.Second}
}

func (h *History) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), h.timeout)
}

func (h *History) Append(rec domain.HistoryRecord) error {
	ctx, cancel := h.ctx()
	defer cancel()
	return h.c.AppendHistory(ctx, rec)
}

func (h *History) List() ([]domain.HistoryRecord, error) {
	ctx, cancel := h.ctx()
	defer cancel()
	return h.c.History(ctx, 0)
}

// Reload is List; nothing is cached on this side.
func (h *History) Reload() ([]domain.HistoryRecord, error) { return h.List() }

func (h *History) Clear() error {
	ctx, cancel := h.ctx()
	defer cancel()
	return h.c.ClearHistory(ctx)
}

// Recall returns the result at index, counting back from the most recent.
func (h *History) Recall(index int) (float64, error) {
	recs, err := h.List()
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(recs) {
		return 0, fmt.Errorf("%w: %d of %d", history.ErrNoEntry, index, len(recs))
	}
	return recs[len(recs)-1-index].Result, nil
}
