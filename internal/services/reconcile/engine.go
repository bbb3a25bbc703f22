// Package reconcile computes how a transaction mutates the portfolio
// snapshot. It is the only code allowed to translate ledger mutations into
// bucket movements, and it is pure: no storage, no logging, no rejection.
package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/models"
)

// Direction selects whether a transaction's effect is applied or undone.
type Direction int

const (
	Apply Direction = iota
	Reverse
)

// sign returns the Apply-direction sign of a transaction type's effect on
// its category bucket. income/dividend add, expense subtracts; buy moves
// value into the purchased bucket and sell moves it out, a deliberately
// one-sided model with no offsetting cash leg.
func sign(t models.TransactionType) int64 {
	switch t {
	case models.TypeIncome, models.TypeDividend, models.TypeBuy:
		return 1
	case models.TypeExpense, models.TypeSell:
		return -1
	}
	// Unknown types are a contract violation upstream; the engine stays
	// total and treats them as having no effect.
	return 0
}

// Reconcile returns the portfolio with the transaction's effect applied or
// reversed. Reverse is the mechanical negation of Apply, which guarantees
// Reconcile(Reconcile(p, t, Apply), t, Reverse) equals p exactly.
func Reconcile(p models.Portfolio, t models.Transaction, d Direction) models.Portfolio {
	delta := t.Amount.Mul(decimal.NewFromInt(sign(t.Type)))
	if d == Reverse {
		delta = delta.Neg()
	}
	return p.WithBucket(t.Category, p.Bucket(t.Category).Add(delta))
}
