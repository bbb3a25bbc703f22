package models

import "github.com/shopspring/decimal"

// Portfolio is the four-bucket running balance snapshot. It is persisted
// independently of the ledger and kept in sync by the reconciliation engine;
// it is never derived by summing the ledger on read. Buckets are allowed to
// go negative (totals are not clamped).
type Portfolio struct {
	Personal decimal.Decimal `json:"personal"`
	Business decimal.Decimal `json:"business"`
	Crypto   decimal.Decimal `json:"crypto"`
	Stocks   decimal.Decimal `json:"stocks"`
}

// DefaultPortfolio is the documented seed used when no snapshot has been
// persisted yet. Its total is 131280.
func DefaultPortfolio() Portfolio {
	return Portfolio{
		Personal: decimal.NewFromInt(42500),
		Business: decimal.NewFromInt(28950),
		Crypto:   decimal.NewFromInt(24680),
		Stocks:   decimal.NewFromInt(35150),
	}
}

// Bucket returns the balance of the bucket a category maps to.
// The "stock" category maps to the Stocks field; the mapping is exhaustive
// over valid categories and returns zero for anything else.
func (p Portfolio) Bucket(c Category) decimal.Decimal {
	switch c {
	case CategoryPersonal:
		return p.Personal
	case CategoryBusiness:
		return p.Business
	case CategoryCrypto:
		return p.Crypto
	case CategoryStock:
		return p.Stocks
	}
	return decimal.Zero
}

// WithBucket returns a copy of the portfolio with the named bucket replaced.
// Unknown categories leave the portfolio unchanged.
func (p Portfolio) WithBucket(c Category, v decimal.Decimal) Portfolio {
	switch c {
	case CategoryPersonal:
		p.Personal = v
	case CategoryBusiness:
		p.Business = v
	case CategoryCrypto:
		p.Crypto = v
	case CategoryStock:
		p.Stocks = v
	}
	return p
}

// Equal reports exact numeric equality of all four buckets.
func (p Portfolio) Equal(o Portfolio) bool {
	return p.Personal.Equal(o.Personal) &&
		p.Business.Equal(o.Business) &&
		p.Crypto.Equal(o.Crypto) &&
		p.Stocks.Equal(o.Stocks)
}
