package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/common"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/interfaces"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/models"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/services/backup"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/services/metrics"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/services/reconcile"
)

// Compile-time interface check
var _ interfaces.Tracker = (*Tracker)(nil)

// Tracker is the application facade. It holds the only session state, the
// in-memory ledger and portfolio mirrors, and keeps them synchronized with
// the repository: every mutation writes the store first, then updates the
// mirror, so reads never re-hit the store mid-session and mirror and store
// never diverge after a successful call.
//
// The data model is single-session, but the HTTP layer serves requests
// concurrently, so a mutex serializes access.
type Tracker struct {
	mu     sync.Mutex
	repo   interfaces.Repository
	logger *common.Logger

	ledger    []models.Transaction
	portfolio models.Portfolio

	// now is swappable for deterministic month bucketing in tests.
	now func() time.Time
}

// NewTracker creates the facade. Call LoadInitialState before serving.
func NewTracker(repo interfaces.Repository, logger *common.Logger) *Tracker {
	return &Tracker{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// LoadInitialState populates the in-memory mirrors from the repository.
func (t *Tracker) LoadInitialState(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ledger, err := t.repo.ReadTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}
	portfolio, err := t.repo.ReadPortfolio(ctx)
	if err != nil {
		return fmt.Errorf("failed to load portfolio: %w", err)
	}

	t.ledger = ledger
	t.portfolio = portfolio
	t.logger.Info().Int("transactions", len(ledger)).Msg("Initial state loaded")
	return nil
}

// ListTransactions returns a copy of the ledger, newest first.
func (t *Tracker) ListTransactions() []models.Transaction {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.Transaction, len(t.ledger))
	copy(out, t.ledger)
	return out
}

// AddTransaction persists the record, applies its portfolio effect, and
// updates the mirrors. Input must already be validated at the API boundary.
func (t *Tracker) AddTransaction(ctx context.Context, input models.TransactionInput) (models.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tx, err := t.repo.AddTransaction(ctx, input)
	if err != nil {
		return models.Transaction{}, err
	}

	updated := reconcile.Reconcile(t.portfolio, tx, reconcile.Apply)
	if err := t.repo.WritePortfolio(ctx, updated); err != nil {
		return models.Transaction{}, err
	}

	t.ledger = append([]models.Transaction{tx}, t.ledger...)
	t.portfolio = updated

	t.logger.Info().
		Str("id", tx.ID).
		Str("type", string(tx.Type)).
		Str("category", string(tx.Category)).
		Str("amount", tx.Amount.String()).
		Msg("Transaction added")
	return tx, nil
}

// DeleteTransaction reverses the record's portfolio effect and removes it
// from the ledger. An unknown id is a no-op with no portfolio change.
func (t *Tracker) DeleteTransaction(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := -1
	for i, tx := range t.ledger {
		if tx.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	tx := t.ledger[idx]

	updated := reconcile.Reconcile(t.portfolio, tx, reconcile.Reverse)
	if err := t.repo.WritePortfolio(ctx, updated); err != nil {
		return err
	}
	if err := t.repo.RemoveTransaction(ctx, id); err != nil {
		return err
	}

	t.ledger = append(t.ledger[:idx:idx], t.ledger[idx+1:]...)
	t.portfolio = updated

	t.logger.Info().Str("id", id).Msg("Transaction deleted")
	return nil
}

// GetPortfolio returns the current snapshot.
func (t *Tracker) GetPortfolio() models.Portfolio {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.portfolio
}

// SetPortfolio overwrites the snapshot directly, bypassing the
// reconciliation engine. This is the manual correction path.
func (t *Tracker) SetPortfolio(ctx context.Context, p models.Portfolio) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.repo.WritePortfolio(ctx, p); err != nil {
		return err
	}
	t.portfolio = p
	t.logger.Info().Msg("Portfolio overwritten")
	return nil
}

// GetTotals computes the portfolio total and current-month aggregates.
func (t *Tracker) GetTotals() models.Totals {
	t.mu.Lock()
	defer t.mu.Unlock()
	return metrics.Totals(t.ledger, t.portfolio, t.now())
}

// ExportBackup returns the full-state backup document as indented JSON.
func (t *Tracker) ExportBackup() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return backup.MarshalBackup(backup.ExportBackup(t.ledger, t.portfolio, t.now()))
}

// ExportCSV returns the ledger as CSV text.
func (t *Tracker) ExportCSV() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return backup.ExportCSV(t.ledger)
}

// ImportBackup replaces ledger and/or portfolio from a backup document.
// The payload is parsed in full before anything is written, so a malformed
// document leaves both store and mirrors untouched.
func (t *Tracker) ImportBackup(ctx context.Context, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	result, err := backup.ParseBackup(data)
	if err != nil {
		return err
	}

	if result.HasTransactions {
		if err := t.repo.WriteTransactions(ctx, result.Transactions); err != nil {
			return err
		}
		t.ledger = result.Transactions
	}
	if result.Portfolio != nil {
		if err := t.repo.WritePortfolio(ctx, *result.Portfolio); err != nil {
			return err
		}
		t.portfolio = *result.Portfolio
	}

	t.logger.Info().
		Bool("transactions", result.HasTransactions).
		Bool("portfolio", result.Portfolio != nil).
		Msg("Backup imported")
	return nil
}

// ImportCSV replaces the ledger from CSV text. The portfolio is untouched.
// Any row failure rejects the whole payload with no store mutation.
func (t *Tracker) ImportCSV(ctx context.Context, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	txs, err := backup.ParseCSV(data)
	if err != nil {
		return err
	}

	if err := t.repo.WriteTransactions(ctx, txs); err != nil {
		return err
	}
	t.ledger = txs

	t.logger.Info().Int("transactions", len(txs)).Msg("CSV imported")
	return nil
}
