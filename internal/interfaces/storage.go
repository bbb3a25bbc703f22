// Package interfaces defines service contracts for Wealth Nexus
package interfaces

import (
	"context"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/models"
)

// Repository provides typed, durable access to the two persisted documents:
// the transaction ledger and the portfolio snapshot. It owns JSON
// (de)serialization and the default-value policy: absent or unreadable
// documents surface as the empty ledger or the seed portfolio, never as an
// error.
type Repository interface {
	// ReadTransactions returns the ledger newest-first. Absent or corrupt
	// data yields an empty slice.
	ReadTransactions(ctx context.Context) ([]models.Transaction, error)

	// WriteTransactions durably replaces the persisted ledger.
	WriteTransactions(ctx context.Context, txs []models.Transaction) error

	// AddTransaction assigns a new unique id, prepends the record to the
	// ledger, persists, and returns the stored record.
	AddTransaction(ctx context.Context, input models.TransactionInput) (models.Transaction, error)

	// RemoveTransaction removes the matching record and persists the
	// remaining ledger. An absent id is a no-op, not an error.
	RemoveTransaction(ctx context.Context, id string) error

	// ReadPortfolio returns the persisted snapshot, or the documented seed
	// if absent.
	ReadPortfolio(ctx context.Context) (models.Portfolio, error)

	// WritePortfolio durably replaces the persisted snapshot.
	WritePortfolio(ctx context.Context, p models.Portfolio) error

	Close() error
}
