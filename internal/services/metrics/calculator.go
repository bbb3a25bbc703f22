// Package metrics derives read-only aggregates from the ledger and the
// portfolio snapshot. Every function is pure and recomputed per call; nothing
// here is cached across ledger mutations.
package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/models"
)

// IncomeTypes are the transaction types counted as monthly income.
var IncomeTypes = []models.TransactionType{models.TypeIncome, models.TypeDividend}

// ExpenseTypes are the transaction types counted as monthly expenses.
var ExpenseTypes = []models.TransactionType{models.TypeExpense}

// TotalPortfolio sums the four buckets. Not clamped; a negative bucket
// produces a smaller (possibly negative) total.
func TotalPortfolio(p models.Portfolio) decimal.Decimal {
	return p.Personal.Add(p.Business).Add(p.Crypto).Add(p.Stocks)
}

// MonthlyAggregate sums the amounts of ledger transactions whose date falls
// in the same calendar month and year as ref and whose type is in kinds.
// Transactions with unparseable dates are skipped.
func MonthlyAggregate(ledger []models.Transaction, kinds []models.TransactionType, ref time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range ledger {
		if !typeIn(tx.Type, kinds) {
			continue
		}
		date, err := tx.Time()
		if err != nil {
			continue
		}
		if date.Month() != ref.Month() || date.Year() != ref.Year() {
			continue
		}
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// Totals computes the full derived-metrics read model for the given
// reference date.
func Totals(ledger []models.Transaction, p models.Portfolio, ref time.Time) models.Totals {
	income := MonthlyAggregate(ledger, IncomeTypes, ref)
	expenses := MonthlyAggregate(ledger, ExpenseTypes, ref)
	return models.Totals{
		Total:           TotalPortfolio(p),
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		NetIncome:       income.Sub(expenses),
	}
}

func typeIn(t models.TransactionType, kinds []models.TransactionType) bool {
	for _, k := range kinds {
		if t == k {
			return true
		}
	}
	return false
}
