package storage

import (
	"fmt"
	"path/filepath"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/common"
)

// NewBlobStore creates the configured blob store backend.
// "file" keeps each document as a JSON file under the data path; "badger"
// opens an embedded BadgerHold database in a subdirectory.
func NewBlobStore(logger *common.Logger, cfg common.StorageConfig) (BlobStore, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileBlobStore(logger, cfg.Path)
	case "badger":
		return NewBadgerBlobStore(logger, filepath.Join(cfg.Path, "badger"))
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
