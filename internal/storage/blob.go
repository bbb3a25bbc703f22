// Package storage provides blob-based persistence with pluggable backends.
package storage

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned when a key has no stored blob.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is a key-addressed durable blob store. The repository persists
// exactly two small JSON documents through it, so the surface stays minimal.
// Implementations: FileBlobStore (JSON files on disk), BadgerBlobStore
// (embedded BadgerHold database).
type BlobStore interface {
	// Get retrieves a blob by key. Returns ErrBlobNotFound if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores a blob durably. Overwrites if exists.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes a blob. No error if not found.
	Delete(ctx context.Context, key string) error

	// Exists checks if a blob exists.
	Exists(ctx context.Context, key string) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}
