package models

import "github.com/shopspring/decimal"

// Totals is the derived-metrics read model: the portfolio grand total plus
// the current-month income/expense aggregates. Computed on demand, never
// persisted or cached across ledger mutations.
type Totals struct {
	Total           decimal.Decimal `json:"total"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	NetIncome       decimal.Decimal `json:"net_income"`
}
