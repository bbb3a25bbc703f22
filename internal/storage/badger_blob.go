package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/timshannon/badgerhold/v4"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/common"
)

// blobRecord is the BadgerHold record type for stored blobs.
type blobRecord struct {
	Key  string `badgerhold:"key"`
	Data []byte
}

// BadgerBlobStore implements BlobStore using an embedded BadgerHold database.
type BadgerBlobStore struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewBadgerBlobStore opens a BadgerHold-backed blob store at the given
// directory path, creating it if necessary.
func NewBadgerBlobStore(logger *common.Logger, path string) (*BadgerBlobStore, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create badger directory %s: %w", path, err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil // Disable default badger logger

	db, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	logger.Debug().Str("path", path).Msg("BadgerBlobStore opened")

	return &BadgerBlobStore{
		db:     db,
		logger: logger,
	}, nil
}

// Get retrieves a blob by key.
func (bs *BadgerBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec blobRecord
	if err := bs.db.Get(key, &rec); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to get blob %s: %w", key, err)
	}
	return rec.Data, nil
}

// Put stores a blob. Overwrites if exists.
func (bs *BadgerBlobStore) Put(ctx context.Context, key string, data []byte) error {
	rec := blobRecord{Key: key, Data: data}
	if err := bs.db.Upsert(key, rec); err != nil {
		return fmt.Errorf("failed to put blob %s: %w", key, err)
	}
	return nil
}

// Delete removes a blob. No error if not found.
func (bs *BadgerBlobStore) Delete(ctx context.Context, key string) error {
	err := bs.db.Delete(key, blobRecord{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// Exists checks if a blob exists.
func (bs *BadgerBlobStore) Exists(ctx context.Context, key string) (bool, error) {
	var rec blobRecord
	err := bs.db.Get(key, &rec)
	if err == nil {
		return true, nil
	}
	if err == badgerhold.ErrNotFound {
		return false, nil
	}
	return false, fmt.Errorf("failed to check blob %s: %w", key, err)
}

// Close closes the underlying database.
func (bs *BadgerBlobStore) Close() error {
	if bs.db != nil {
		return bs.db.Close()
	}
	return nil
}
