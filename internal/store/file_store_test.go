package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"qgcalc/internal/domain"
	"qgcalc/internal/store"
)

func TestFileStore_SetGet_OK(t *testing.T) {
	var kv domain.KVStore = store.NewFileStore(t.TempDir())

	if err := kv.Set("qg_history", []byte(`[{"exp":"1+1","res":2}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := kv.Get("qg_history")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || string(got) != `[{"exp":"1+1","res":2}]` {
		t.Fatalf("get = %q, %v", got, ok)
	}
}

func TestFileStore_MissingKey(t *testing.T) {
	kv := store.NewFileStore(filepath.Join(t.TempDir(), "not-yet"))
	_, ok, err := kv.Get("qg_theme")
	if err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
}

func TestFileStore_CreatesDirAndMode(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "home")
	kv := store.NewFileStore(dir)
	if err := kv.Set("qg_theme", []byte(`"light"`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	fi, err := os.Stat(kv.Path("qg_theme"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v", fi.Mode().Perm())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestFileStore_InvalidKey(t *testing.T) {
	kv := store.NewFileStore(t.TempDir())
	for _, key := range []string{"", "../escape", "a/b", "sp ace"} {
		if err := kv.Set(key, nil); !errors.Is(err, store.ErrInvalidKey) {
			t.Fatalf("set %q: %v", key, err)
		}
	}
}

func TestFileStore_Unavailable(t *testing.T) {
	// A regular file where the directory should be.
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	kv := store.NewFileStore(blocker)

	if err := kv.Set("qg_history", []byte("[]")); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("set: want ErrUnavailable, got %v", err)
	}
	if _, _, err := kv.Get("qg_history"); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("get: want ErrUnavailable, got %v", err)
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	kv := store.NewMemoryStore()
	v := []byte("abc")
	if err := kv.Set("k", v); err != nil {
		t.Fatalf("set: %v", err)
	}
	v[0] = 'z'
	got, ok, _ := kv.Get("k")
	if !ok || string(got) != "abc" {
		t.Fatalf("get = %q, %v", got, ok)
	}
}

func TestEncryptedStore_RoundTrip(t *testing.T) {
	inner := store.NewMemoryStore()
	kv, err := store.NewEncryptedStore(inner, "correct")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := kv.Set("qg_history", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	sealed, _, _ := inner.Get("qg_history")
	if strings.Contains(string(sealed), "[]") {
		t.Fatalf("value stored in clear: %s", sealed)
	}

	got, ok, err := kv.Get("qg_history")
	if err != nil || !ok || string(got) != "[]" {
		t.Fatalf("get = %q, %v, %v", got, ok, err)
	}
}

func TestEncryptedStore_WrongPassphrase_Fails(t *testing.T) {
	inner := store.NewMemoryStore()
	good, _ := store.NewEncryptedStore(inner, "correct")
	if err := good.Set("qg_theme", []byte(`"dark"`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	bad, _ := store.NewEncryptedStore(inner, "wrong")
	if _, _, err := bad.Get("qg_theme"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}

func TestEncryptedStore_ValueBoundToKey(t *testing.T) {
	inner := store.NewMemoryStore()
	kv, _ := store.NewEncryptedStore(inner, "pass")
	if err := kv.Set("a", []byte("1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	sealed, _, _ := inner.Get("a")
	_ = inner.Set("b", sealed)

	if _, _, err := kv.Get("b"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("swapped value opened: %v", err)
	}
}

func TestEncryptedStore_EmptyPassphrase(t *testing.T) {
	if _, err := store.NewEncryptedStore(store.NewMemoryStore(), ""); !errors.Is(err, store.ErrWeakPassphrase) {
		t.Fatalf("want ErrWeakPassphrase, got %v", err)
	}
}

func TestFileStore_Watch(t *testing.T) {
	kv := store.NewFileStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := kv.Watch(ctx, "qg_history")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := kv.Set("other", []byte("1")); err != nil {
		t.Fatalf("set other: %v", err)
	}
	if err := kv.Set("qg_history", []byte("[]")); err != nil {
		t.Fatalf("set: %v", err)
	}

	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
