package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/models"
)

func tx(typ models.TransactionType, amount string, date string) models.Transaction {
	return models.Transaction{
		ID:       "tx",
		Type:     typ,
		Category: models.CategoryPersonal,
		Asset:    "Test",
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
	}
}

func TestTotalPortfolio_Seed(t *testing.T) {
	total := TotalPortfolio(models.DefaultPortfolio())
	if !total.Equal(decimal.NewFromInt(131280)) {
		t.Errorf("seed total = %s, want 131280", total)
	}
}

func TestTotalPortfolio_NegativeBuckets(t *testing.T) {
	p := models.Portfolio{
		Personal: decimal.NewFromInt(100),
		Business: decimal.NewFromInt(-250),
		Crypto:   decimal.NewFromInt(50),
		Stocks:   decimal.NewFromInt(25),
	}
	total := TotalPortfolio(p)
	if !total.Equal(decimal.NewFromInt(-75)) {
		t.Errorf("total = %s, want -75", total)
	}
}

func TestMonthlyAggregate_MonthAndYearBoundaries(t *testing.T) {
	ref := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	ledger := []models.Transaction{
		tx(models.TypeIncome, "100", "2024-03-01"),  // counted
		tx(models.TypeIncome, "200", "2024-03-31"),  // counted
		tx(models.TypeDividend, "50", "2024-03-15"), // counted (dividend is income)
		tx(models.TypeIncome, "400", "2024-02-29"),  // adjacent month, within 31 days, excluded
		tx(models.TypeIncome, "800", "2024-04-01"),  // adjacent month, excluded
		tx(models.TypeIncome, "1600", "2023-03-15"), // same month, wrong year, excluded
		tx(models.TypeExpense, "75", "2024-03-10"),  // wrong kind, excluded
	}

	got := MonthlyAggregate(ledger, IncomeTypes, ref)
	if !got.Equal(decimal.NewFromInt(350)) {
		t.Errorf("monthly income = %s, want 350", got)
	}

	expenses := MonthlyAggregate(ledger, ExpenseTypes, ref)
	if !expenses.Equal(decimal.NewFromInt(75)) {
		t.Errorf("monthly expenses = %s, want 75", expenses)
	}
}

func TestMonthlyAggregate_SkipsUnparseableDates(t *testing.T) {
	ref := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	ledger := []models.Transaction{
		tx(models.TypeIncome, "100", "2024-03-01"),
		tx(models.TypeIncome, "999", "not-a-date"),
	}
	got := MonthlyAggregate(ledger, IncomeTypes, ref)
	if !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("monthly income = %s, want 100", got)
	}
}

func TestMonthlyAggregate_EmptyLedger(t *testing.T) {
	got := MonthlyAggregate(nil, IncomeTypes, time.Now())
	if !got.IsZero() {
		t.Errorf("expected zero, got %s", got)
	}
}

func TestTotals_NetIncome(t *testing.T) {
	ref := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	ledger := []models.Transaction{
		tx(models.TypeIncome, "1000", "2024-03-05"),
		tx(models.TypeDividend, "200", "2024-03-12"),
		tx(models.TypeExpense, "450", "2024-03-18"),
	}

	totals := Totals(ledger, models.DefaultPortfolio(), ref)
	if !totals.Total.Equal(decimal.NewFromInt(131280)) {
		t.Errorf("total = %s, want 131280", totals.Total)
	}
	if !totals.MonthlyIncome.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("monthly income = %s, want 1200", totals.MonthlyIncome)
	}
	if !totals.MonthlyExpenses.Equal(decimal.NewFromInt(450)) {
		t.Errorf("monthly expenses = %s, want 450", totals.MonthlyExpenses)
	}
	if !totals.NetIncome.Equal(decimal.NewFromInt(750)) {
		t.Errorf("net income = %s, want 750", totals.NetIncome)
	}
}
