// Package models defines data structures for Wealth Nexus
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Persisted documents and API payloads carry plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the calendar-date format used on the wire and in storage.
// Dates carry no time-of-day semantics; they exist for month/year bucketing.
const DateLayout = "2006-01-02"

// TransactionType classifies the direction of a transaction's effect.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeBuy      TransactionType = "buy"
	TypeSell     TransactionType = "sell"
	TypeDividend TransactionType = "dividend"
)

// Category names the portfolio bucket a transaction affects.
// Note the "stock" category maps to the Portfolio.Stocks field.
type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryBusiness Category = "business"
	CategoryCrypto   Category = "crypto"
	CategoryStock    Category = "stock"
)

// Validation errors for transaction input.
var (
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidCategory = errors.New("invalid category")
	ErrEmptyAsset      = errors.New("asset is required")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrInvalidDate     = errors.New("invalid date")
)

// Valid reports whether t is one of the five known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeBuy, TypeSell, TypeDividend:
		return true
	}
	return false
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryBusiness, CategoryCrypto, CategoryStock:
		return true
	}
	return false
}

// Transaction is an immutable ledger fact. A transaction is created once and
// optionally deleted; it is never edited in place (mutation = delete + re-add).
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
	Asset       string          `json:"asset"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
}

// TransactionInput carries the caller-supplied fields of a transaction;
// the id is assigned by the repository at creation time.
type TransactionInput struct {
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
	Asset       string          `json:"asset"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
}

// Validate checks the input against the API-boundary contract. The
// reconciliation engine does not re-validate; every path that constructs a
// transaction must pass through here first.
func (in TransactionInput) Validate() error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, in.Type)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, in.Category)
	}
	if strings.TrimSpace(in.Asset) == "" {
		return ErrEmptyAsset
	}
	if in.Amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, in.Amount)
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}
	return nil
}

// Transaction materializes the input into a stored record with the given id.
func (in TransactionInput) Transaction(id string) Transaction {
	return Transaction{
		ID:          id,
		Type:        in.Type,
		Category:    in.Category,
		Asset:       in.Asset,
		Amount:      in.Amount,
		Date:        in.Date,
		Description: in.Description,
	}
}

// Validate checks a fully-formed transaction, used when records arrive from
// an import payload rather than the creation API.
func (t Transaction) Validate() error {
	return TransactionInput{
		Type:     t.Type,
		Category: t.Category,
		Asset:    t.Asset,
		Amount:   t.Amount,
		Date:     t.Date,
	}.Validate()
}

// Time parses the transaction's calendar date.
func (t Transaction) Time() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}
