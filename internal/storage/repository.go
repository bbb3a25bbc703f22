package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/common"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/interfaces"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/models"
)

// Persisted document keys.
const (
	KeyTransactions = "transactions"
	KeyPortfolio    = "portfolio"
)

// Compile-time interface check
var _ interfaces.Repository = (*Repository)(nil)

// Repository implements interfaces.Repository over a BlobStore.
//
// Read policy: an absent key yields the empty ledger or the seed portfolio.
// A blob that fails to decode is treated the same way; the failed read is
// logged and the default surfaces, so a corrupt store never crashes a caller.
type Repository struct {
	blobs  BlobStore
	logger *common.Logger
}

// NewRepository creates a repository over the given blob store.
func NewRepository(blobs BlobStore, logger *common.Logger) *Repository {
	return &Repository{blobs: blobs, logger: logger}
}

// ReadTransactions returns the ledger newest-first, or an empty slice when
// the key is absent or the stored document is unreadable.
func (r *Repository) ReadTransactions(ctx context.Context) ([]models.Transaction, error) {
	data, err := r.blobs.Get(ctx, KeyTransactions)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	var txs []models.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		r.logger.Warn().Err(err).Msg("Ledger document is corrupt, treating as empty")
		return []models.Transaction{}, nil
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// WriteTransactions durably replaces the persisted ledger.
func (r *Repository) WriteTransactions(ctx context.Context, txs []models.Transaction) error {
	if txs == nil {
		txs = []models.Transaction{}
	}
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	if err := r.blobs.Put(ctx, KeyTransactions, data); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	r.logger.Debug().Int("count", len(txs)).Msg("Ledger written")
	return nil
}

// AddTransaction assigns a new id, prepends the record to the ledger,
// persists, and returns the stored record.
func (r *Repository) AddTransaction(ctx context.Context, input models.TransactionInput) (models.Transaction, error) {
	txs, err := r.ReadTransactions(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	tx := input.Transaction(uuid.NewString())
	txs = append([]models.Transaction{tx}, txs...)

	if err := r.WriteTransactions(ctx, txs); err != nil {
		return models.Transaction{}, err
	}
	r.logger.Debug().Str("id", tx.ID).Str("type", string(tx.Type)).Msg("Transaction added")
	return tx, nil
}

// RemoveTransaction removes the matching record and persists the remaining
// ledger. An absent id is a no-op.
func (r *Repository) RemoveTransaction(ctx context.Context, id string) error {
	txs, err := r.ReadTransactions(ctx)
	if err != nil {
		return err
	}

	filtered := txs[:0:0]
	for _, tx := range txs {
		if tx.ID != id {
			filtered = append(filtered, tx)
		}
	}
	if len(filtered) == len(txs) {
		return nil
	}

	if err := r.WriteTransactions(ctx, filtered); err != nil {
		return err
	}
	r.logger.Debug().Str("id", id).Msg("Transaction removed")
	return nil
}

// ReadPortfolio returns the persisted snapshot, or the documented seed when
// the key is absent or the stored document is unreadable.
func (r *Repository) ReadPortfolio(ctx context.Context) (models.Portfolio, error) {
	data, err := r.blobs.Get(ctx, KeyPortfolio)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			return models.DefaultPortfolio(), nil
		}
		return models.Portfolio{}, fmt.Errorf("failed to read portfolio: %w", err)
	}

	var p models.Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		r.logger.Warn().Err(err).Msg("Portfolio document is corrupt, using default seed")
		return models.DefaultPortfolio(), nil
	}
	return p, nil
}

// WritePortfolio durably replaces the persisted snapshot.
func (r *Repository) WritePortfolio(ctx context.Context, p models.Portfolio) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode portfolio: %w", err)
	}
	if err := r.blobs.Put(ctx, KeyPortfolio, data); err != nil {
		return fmt.Errorf("failed to write portfolio: %w", err)
	}
	r.logger.Debug().Msg("Portfolio written")
	return nil
}

// Close closes the underlying blob store.
func (r *Repository) Close() error {
	return r.blobs.Close()
}
