package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/common"
)

func newBadgerStore(t *testing.T) *BadgerBlobStore {
	t.Helper()
	bs, err := NewBadgerBlobStore(common.NewSilentLogger(), filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("NewBadgerBlobStore failed: %v", err)
	}
	t.Cleanup(func() { bs.Close() })
	return bs
}

func TestBadgerBlobStore_PutGetRoundTrip(t *testing.T) {
	bs := newBadgerStore(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"1"}]`)
	if err := bs.Put(ctx, "transactions", payload); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := bs.Get(ctx, "transactions")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("round trip mismatch: %s", got)
	}
}

func TestBadgerBlobStore_GetMissing(t *testing.T) {
	bs := newBadgerStore(t)

	_, err := bs.Get(context.Background(), "nope")
	if !errors.Is(err, ErrBlobNotFound) {
		t.Fatalf("expected ErrBlobNotFound, got %v", err)
	}
}

func TestBadgerBlobStore_OverwriteDeleteExists(t *testing.T) {
	bs := newBadgerStore(t)
	ctx := context.Background()

	bs.Put(ctx, "portfolio", []byte("one"))
	bs.Put(ctx, "portfolio", []byte("two"))

	got, _ := bs.Get(ctx, "portfolio")
	if string(got) != "two" {
		t.Errorf("expected overwritten value, got %s", got)
	}

	exists, err := bs.Exists(ctx, "portfolio")
	if err != nil || !exists {
		t.Fatalf("expected blob to exist, got %v / %v", exists, err)
	}

	if err := bs.Delete(ctx, "portfolio"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	exists, _ = bs.Exists(ctx, "portfolio")
	if exists {
		t.Error("expected blob gone after delete")
	}
	if err := bs.Delete(ctx, "portfolio"); err != nil {
		t.Fatalf("repeat Delete failed: %v", err)
	}
}

func TestBadgerBlobStore_CloseNil(t *testing.T) {
	bs := &BadgerBlobStore{}
	if err := bs.Close(); err != nil {
		t.Fatalf("Close on nil db should not error: %v", err)
	}
}

func TestNewBlobStore_Factory(t *testing.T) {
	logger := common.NewSilentLogger()

	fileStore, err := NewBlobStore(logger, common.StorageConfig{Backend: "file", Path: t.TempDir()})
	if err != nil {
		t.Fatalf("file backend failed: %v", err)
	}
	if _, ok := fileStore.(*FileBlobStore); !ok {
		t.Errorf("expected *FileBlobStore, got %T", fileStore)
	}
	fileStore.Close()

	badgerStore, err := NewBlobStore(logger, common.StorageConfig{Backend: "badger", Path: t.TempDir()})
	if err != nil {
		t.Fatalf("badger backend failed: %v", err)
	}
	if _, ok := badgerStore.(*BadgerBlobStore); !ok {
		t.Errorf("expected *BadgerBlobStore, got %T", badgerStore)
	}
	badgerStore.Close()

	if _, err := NewBlobStore(logger, common.StorageConfig{Backend: "surreal", Path: t.TempDir()}); err == nil {
		t.Error("expected error for unknown backend")
	}
}
