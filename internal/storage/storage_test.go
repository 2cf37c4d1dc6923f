package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jakubciszak/mealbook-cli/internal/storage"
)

func testStoreContract(t *testing.T, store storage.Store) {
	t.Helper()
	ctx := context.Background()

	got, err := store.GetItem(ctx, "missing")
	if err != nil {
		t.Fatalf("get missing key: %v", err)
	}
	if got != nil {
		t.Fatalf("missing key must yield nil, got %q", got)
	}

	if err := store.SetItem(ctx, "a", []byte("one")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.SetItem(ctx, "a", []byte("two")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = store.GetItem(ctx, "a")
	if err != nil || string(got) != "two" {
		t.Fatalf("get after overwrite: %q %v", got, err)
	}

	if err := store.SetItem(ctx, "b", []byte("other")); err != nil {
		t.Fatalf("set second key: %v", err)
	}
	if err := store.RemoveItem(ctx, "a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got, _ := store.GetItem(ctx, "a"); got != nil {
		t.Fatalf("removed key must yield nil, got %q", got)
	}
	if err := store.RemoveItem(ctx, "a"); err != nil {
		t.Fatalf("removing an absent key must not error: %v", err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := store.GetItem(ctx, "b"); got != nil {
		t.Fatalf("clear must remove every key, got %q", got)
	}
}

func TestMemoryStoreContract(t *testing.T) {
	t.Parallel()
	testStoreContract(t, storage.NewMemoryStore())
}

func TestSQLiteStoreContract(t *testing.T) {
	t.Parallel()
	store, err := storage.Open(filepath.Join(t.TempDir(), "mealbook.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	testStoreContract(t, store)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "mealbook.db")
	ctx := context.Background()

	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.SetItem(ctx, "doc", []byte(`{"meals":[]}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := storage.Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.GetItem(ctx, "doc")
	if err != nil || string(got) != `{"meals":[]}` {
		t.Fatalf("value lost across reopen: %q %v", got, err)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := context.Background()

	original := []byte("abc")
	if err := store.SetItem(ctx, "k", original); err != nil {
		t.Fatalf("set: %v", err)
	}
	original[0] = 'x'

	got, err := store.GetItem(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "abc" {
		t.Fatalf("stored value must be isolated from caller mutation, got %q", got)
	}
	got[0] = 'y'
	again, _ := store.GetItem(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("returned value must be a copy, got %q", again)
	}
}
