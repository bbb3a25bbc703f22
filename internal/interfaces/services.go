package interfaces

import (
	"context"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/models"
)

// Tracker is the application facade consumed by presentation clients. It owns
// the only session state (in-memory ledger and portfolio mirrors) and funnels
// every mutation through the reconciliation engine and the repository. After
// any call returns successfully the mirrors match the persistent store.
type Tracker interface {
	// LoadInitialState populates the in-memory mirrors from the repository.
	LoadInitialState(ctx context.Context) error

	// ListTransactions returns the ledger newest-first.
	ListTransactions() []models.Transaction

	// AddTransaction persists the new record, applies its portfolio effect,
	// and returns the stored record. Input must already be validated.
	AddTransaction(ctx context.Context, input models.TransactionInput) (models.Transaction, error)

	// DeleteTransaction reverses the record's portfolio effect and removes
	// it from the ledger. An unknown id is a no-op with no portfolio change.
	DeleteTransaction(ctx context.Context, id string) error

	// GetPortfolio returns the current snapshot.
	GetPortfolio() models.Portfolio

	// SetPortfolio overwrites the snapshot directly, bypassing the
	// reconciliation engine (manual correction path).
	SetPortfolio(ctx context.Context, p models.Portfolio) error

	// GetTotals computes the portfolio total and current-month aggregates.
	GetTotals() models.Totals

	// ExportBackup returns the full-state backup document as JSON.
	ExportBackup() ([]byte, error)

	// ExportCSV returns the ledger as CSV text.
	ExportCSV() string

	// ImportBackup atomically replaces state from a backup document.
	ImportBackup(ctx context.Context, data []byte) error

	// ImportCSV atomically replaces the ledger from CSV text.
	ImportCSV(ctx context.Context, data []byte) error
}
