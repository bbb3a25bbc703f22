package storage

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/common"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/models"
)

func newTestRepo(t *testing.T) (*Repository, *FileBlobStore) {
	t.Helper()
	fb, err := NewFileBlobStore(common.NewSilentLogger(), t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBlobStore failed: %v", err)
	}
	repo := NewRepository(fb, common.NewSilentLogger())
	t.Cleanup(func() { repo.Close() })
	return repo, fb
}

func sampleInput(asset string) models.TransactionInput {
	return models.TransactionInput{
		Type:     models.TypeIncome,
		Category: models.CategoryPersonal,
		Asset:    asset,
		Amount:   decimal.NewFromInt(100),
		Date:     "2024-03-15",
	}
}

func TestRepository_ReadTransactions_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)

	txs, err := repo.ReadTransactions(context.Background())
	if err != nil {
		t.Fatalf("ReadTransactions failed: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("expected empty ledger, got %d records", len(txs))
	}
}

func TestRepository_AddTransaction_PrependsNewestFirst(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.AddTransaction(ctx, sampleInput("First"))
	if err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
	second, err := repo.AddTransaction(ctx, sampleInput("Second"))
	if err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}

	if first.ID == "" || second.ID == "" {
		t.Fatal("expected assigned ids")
	}
	if first.ID == second.ID {
		t.Fatal("ids must be unique")
	}

	txs, _ := repo.ReadTransactions(ctx)
	if len(txs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(txs))
	}
	if txs[0].Asset != "Second" || txs[1].Asset != "First" {
		t.Errorf("expected newest first, got %s then %s", txs[0].Asset, txs[1].Asset)
	}
}

func TestRepository_RemoveTransaction(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	tx, _ := repo.AddTransaction(ctx, sampleInput("Keep"))
	victim, _ := repo.AddTransaction(ctx, sampleInput("Remove"))

	if err := repo.RemoveTransaction(ctx, victim.ID); err != nil {
		t.Fatalf("RemoveTransaction failed: %v", err)
	}

	txs, _ := repo.ReadTransactions(ctx)
	if len(txs) != 1 || txs[0].ID != tx.ID {
		t.Errorf("unexpected ledger after removal: %+v", txs)
	}
}

func TestRepository_RemoveTransaction_UnknownIDIsNoop(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	repo.AddTransaction(ctx, sampleInput("Keep"))

	if err := repo.RemoveTransaction(ctx, "no-such-id"); err != nil {
		t.Fatalf("expected no-op, got error: %v", err)
	}
	txs, _ := repo.ReadTransactions(ctx)
	if len(txs) != 1 {
		t.Errorf("ledger should be unchanged, got %d records", len(txs))
	}
}

func TestRepository_ReadPortfolio_DefaultSeed(t *testing.T) {
	repo, _ := newTestRepo(t)

	p, err := repo.ReadPortfolio(context.Background())
	if err != nil {
		t.Fatalf("ReadPortfolio failed: %v", err)
	}
	if !p.Equal(models.DefaultPortfolio()) {
		t.Errorf("expected default seed, got %+v", p)
	}
}

func TestRepository_WriteReadPortfolio(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	want := models.Portfolio{
		Personal: decimal.NewFromInt(1),
		Business: decimal.NewFromInt(2),
		Crypto:   decimal.NewFromInt(3),
		Stocks:   decimal.NewFromInt(4),
	}
	if err := repo.WritePortfolio(ctx, want); err != nil {
		t.Fatalf("WritePortfolio failed: %v", err)
	}

	got, err := repo.ReadPortfolio(ctx)
	if err != nil {
		t.Fatalf("ReadPortfolio failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("round trip mismatch: %+v != %+v", got, want)
	}
}

func TestRepository_CorruptLedgerTreatedAsEmpty(t *testing.T) {
	repo, fb := newTestRepo(t)
	ctx := context.Background()

	fb.Put(ctx, KeyTransactions, []byte("{not json"))

	txs, err := repo.ReadTransactions(ctx)
	if err != nil {
		t.Fatalf("corrupt ledger must not error: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("expected empty ledger, got %d records", len(txs))
	}
}

func TestRepository_CorruptPortfolioYieldsSeed(t *testing.T) {
	repo, fb := newTestRepo(t)
	ctx := context.Background()

	fb.Put(ctx, KeyPortfolio, []byte("][nope"))

	p, err := repo.ReadPortfolio(ctx)
	if err != nil {
		t.Fatalf("corrupt portfolio must not error: %v", err)
	}
	if !p.Equal(models.DefaultPortfolio()) {
		t.Errorf("expected default seed, got %+v", p)
	}
}

func TestRepository_BadgerBacked(t *testing.T) {
	bs := newBadgerStore(t)
	repo := NewRepository(bs, common.NewSilentLogger())
	ctx := context.Background()

	tx, err := repo.AddTransaction(ctx, sampleInput("Badger"))
	if err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
	txs, _ := repo.ReadTransactions(ctx)
	if len(txs) != 1 || txs[0].ID != tx.ID {
		t.Errorf("unexpected ledger: %+v", txs)
	}
}
