package history_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qgcalc/internal/domain"
	"qgcalc/internal/services/history"
	"qgcalc/internal/store"
)

// flakyStore fails every call while down is set.
type flakyStore struct {
	*store.MemoryStore
	down bool
}

var errDown = fmt.Errorf("disk gone: %w", store.ErrUnavailable)

func (f *flakyStore) Get(key string) ([]byte, bool, error) {
	if f.down {
		return nil, false, errDown
	}
	return f.MemoryStore.Get(key)
}

func (f *flakyStore) Set(key string, value []byte) error {
	if f.down {
		return errDown
	}
	return f.MemoryStore.Set(key, value)
}

func rec(exp string, res float64) domain.HistoryRecord {
	return domain.HistoryRecord{Expression: exp, Result: res}
}

func TestAppend_PersistsWireFormat(t *testing.T) {
	kv := store.NewMemoryStore()
	svc := history.New(kv, 0)

	require.NoError(t, svc.Append(rec("3+4*2", 11)))
	require.NoError(t, svc.Append(rec("50%", 0.5)))

	b, ok, err := kv.Get(history.Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"exp":"3+4*2","res":11},{"exp":"50%","res":0.5}]`, string(b))

	// A second service over the same store sees the same list.
	got, err := history.New(kv, 0).List()
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryRecord{rec("3+4*2", 11), rec("50%", 0.5)}, got)
}

func TestAppend_TrimsToLimit(t *testing.T) {
	svc := history.New(store.NewMemoryStore(), 3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, svc.Append(rec(fmt.Sprint(i), float64(i))))
	}
	got, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryRecord{rec("3", 3), rec("4", 4), rec("5", 5)}, got)
}

func TestNew_DefaultLimit(t *testing.T) {
	assert.Equal(t, history.DefaultLimit, history.New(store.NewMemoryStore(), -1).Limit())
	assert.Equal(t, 50, history.DefaultLimit)
}

func TestRecall(t *testing.T) {
	svc := history.New(store.NewMemoryStore(), 0)
	require.NoError(t, svc.Append(rec("1+1", 2)))
	require.NoError(t, svc.Append(rec("2*3", 6)))

	v, err := svc.Recall(0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	v, err = svc.Recall(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = svc.Recall(2)
	assert.ErrorIs(t, err, history.ErrNoEntry)
	_, err = svc.Recall(-1)
	assert.ErrorIs(t, err, history.ErrNoEntry)
}

func TestClear(t *testing.T) {
	kv := store.NewMemoryStore()
	svc := history.New(kv, 0)
	require.NoError(t, svc.Append(rec("1", 1)))
	require.NoError(t, svc.Clear())

	got, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, got)

	b, _, _ := kv.Get(history.Key)
	assert.Equal(t, "[]", string(b))
}

func TestCorruptHistoryIsDropped(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(history.Key, []byte("{not json")))

	svc := history.New(kv, 0)
	got, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, svc.Append(rec("1", 1)))
	b, _, _ := kv.Get(history.Key)
	assert.JSONEq(t, `[{"exp":"1","res":1}]`, string(b))
}

func TestUnavailableStore_KeepsMemoryCopy(t *testing.T) {
	kv := &flakyStore{MemoryStore: store.NewMemoryStore()}
	require.NoError(t, kv.MemoryStore.Set(history.Key, []byte(`[{"exp":"9","res":9}]`)))
	kv.down = true

	svc := history.New(kv, 0)
	err := svc.Append(rec("1+1", 2))
	assert.ErrorIs(t, err, store.ErrUnavailable)

	got, err := svc.List()
	assert.True(t, errors.Is(err, store.ErrUnavailable))
	assert.Equal(t, []domain.HistoryRecord{rec("1+1", 2)}, got)

	v, err := svc.Recall(0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	// Nothing was written over the unreadable entry.
	kv.down = false
	b, _, _ := kv.Get(history.Key)
	assert.JSONEq(t, `[{"exp":"9","res":9}]`, string(b))
}

func TestReload(t *testing.T) {
	kv := store.NewMemoryStore()
	svc := history.New(kv, 0)
	require.NoError(t, svc.Append(rec("1", 1)))

	other := history.New(kv, 0)
	require.NoError(t, other.Append(rec("2", 2)))

	got, err := svc.Reload()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
