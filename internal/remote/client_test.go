package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qgcalc/internal/domain"
	"qgcalc/internal/engine"
	"qgcalc/internal/remote"
	"qgcalc/internal/server"
	"qgcalc/internal/services/calculator"
	"qgcalc/internal/services/history"
	"qgcalc/internal/store"
)

func newClient(t *testing.T) *remote.Client {
	t.Helper()
	calc := calculator.New(history.New(store.NewMemoryStore(), 0), nil)
	ts := httptest.NewServer(server.New(calc).Handler())
	t.Cleanup(ts.Close)
	return remote.New(ts.URL+"/", ts.Client())
}

func TestClient_EvaluateAndHistory(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	require.NoError(t, c.Health(ctx))

	v, err := c.Calculate(ctx, "(1+2)*3")
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	v, err = c.Calculate(ctx, "50%%")
	require.NoError(t, err)
	assert.Equal(t, 0.005, v)

	recs, err := c.History(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryRecord{{Expression: "50%%", Result: 0.005}}, recs)

	require.NoError(t, c.ClearHistory(ctx))
	recs, err = c.History(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestClient_EvaluateDoesNotRecord(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	v, err := c.Evaluate(ctx, "2+2")
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	recs, err := c.History(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestHistory_SharedWithService(t *testing.T) {
	c := newClient(t)
	h := remote.NewHistory(c)

	require.NoError(t, h.Append(domain.HistoryRecord{Expression: "1/4", Result: 0.25}))
	_, err := c.Calculate(context.Background(), "6*7")
	require.NoError(t, err)

	recs, err := h.List()
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryRecord{{Expression: "1/4", Result: 0.25}, {Expression: "6*7", Result: 42}}, recs)

	v, err := h.Recall(0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
	v, err = h.Recall(1)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)
	_, err = h.Recall(2)
	assert.ErrorIs(t, err, history.ErrNoEntry)

	require.NoError(t, h.Clear())
	recs, err = h.Reload()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestClient_EngineErrorsSurviveTheWire(t *testing.T) {
	c := newClient(t)
	_, err := c.Evaluate(context.Background(), "5/0")
	assert.ErrorIs(t, err, engine.ErrDivisionByZero)

	_, err = c.Evaluate(context.Background(), "(5")
	assert.ErrorIs(t, err, engine.ErrMismatchedParentheses)
}

func TestClient_StatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := remote.New(ts.URL, nil).Evaluate(context.Background(), "1")
	require.Error(t, err)
	assert.True(t, remote.IsStatus(err, http.StatusServiceUnavailable))
	assert.Contains(t, err.Error(), "down for maintenance")
	assert.Contains(t, err.Error(), "POST /eval")
}

func TestClient_BadRequestIsStatusError(t *testing.T) {
	c := newClient(t)
	_, err := c.Evaluate(context.Background(), "")
	assert.True(t, remote.IsStatus(err, http.StatusBadRequest))
}
