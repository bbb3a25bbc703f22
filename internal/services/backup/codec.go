// Package backup serializes the full tracker state to the JSON backup format
// and the CSV transaction format, and parses both back. Parsing fails closed:
// any shape mismatch rejects the whole payload so callers never apply a
// partial import.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/models"
)

// CSVHeader is the fixed header row of the CSV transaction format.
const CSVHeader = "Date,Type,Category,Asset,Amount,Description"

// Parse errors.
var (
	ErrInvalidBackup = errors.New("invalid backup document")
	ErrInvalidCSV    = errors.New("invalid csv payload")
)

// Document is the full-state backup format. ExportDate is a stamp only and
// is ignored on import.
type Document struct {
	Transactions []models.Transaction `json:"transactions"`
	Portfolio    models.Portfolio     `json:"portfolio"`
	ExportDate   string               `json:"exportDate"`
}

// ImportResult carries the decoded parts of a backup document. A backup may
// supply the ledger, the portfolio, or both; each part replaces persisted
// state wholesale only when present.
type ImportResult struct {
	Transactions    []models.Transaction
	HasTransactions bool
	Portfolio       *models.Portfolio
}

// importDocument mirrors Document with pointer fields so that absent keys
// are distinguishable from empty values.
type importDocument struct {
	Transactions *[]models.Transaction `json:"transactions"`
	Portfolio    *models.Portfolio     `json:"portfolio"`
}

// ExportBackup builds the backup document for the given state at time now.
func ExportBackup(ledger []models.Transaction, p models.Portfolio, now time.Time) Document {
	if ledger == nil {
		ledger = []models.Transaction{}
	}
	return Document{
		Transactions: ledger,
		Portfolio:    p,
		ExportDate:   now.UTC().Format(time.RFC3339),
	}
}

// MarshalBackup renders the backup document as indented JSON, matching the
// downloadable-backup format.
func MarshalBackup(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// ParseBackup decodes a backup document. It fails when the payload is not
// valid JSON, when neither a ledger nor a portfolio is present, or when any
// supplied transaction violates the data model. The imported portfolio is
// taken verbatim; it is never recomputed from the imported ledger.
func ParseBackup(data []byte) (*ImportResult, error) {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	if doc.Transactions == nil && doc.Portfolio == nil {
		return nil, fmt.Errorf("%w: no transactions or portfolio present", ErrInvalidBackup)
	}

	result := &ImportResult{Portfolio: doc.Portfolio}
	if doc.Transactions != nil {
		txs := *doc.Transactions
		for i, tx := range txs {
			if err := tx.Validate(); err != nil {
				return nil, fmt.Errorf("%w: transaction %d: %v", ErrInvalidBackup, i, err)
			}
			if txs[i].ID == "" {
				txs[i].ID = uuid.NewString()
			}
		}
		result.Transactions = txs
		result.HasTransactions = true
	}
	return result, nil
}

// ExportCSV renders the ledger in ledger order as CSV text. Fields are
// comma-joined with no quoting or escaping; a comma inside asset or
// description corrupts columns on re-import (documented limitation).
func ExportCSV(ledger []models.Transaction) string {
	lines := make([]string, 0, len(ledger)+1)
	lines = append(lines, CSVHeader)
	for _, tx := range ledger {
		lines = append(lines, strings.Join([]string{
			tx.Date,
			string(tx.Type),
			string(tx.Category),
			tx.Asset,
			tx.Amount.String(),
			tx.Description,
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// ParseCSV decodes CSV text into transactions with fresh ids. The first line
// is always treated as a header and skipped; blank lines are ignored. Every
// data row must carry at least the five leading columns with a valid type,
// category, date, and decimal amount; one bad row rejects the whole payload.
func ParseCSV(data []byte) ([]models.Transaction, error) {
	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidCSV)
	}

	txs := []models.Transaction{}
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(strings.TrimRight(line, "\r"), ",")
		if len(values) < 5 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want at least 5", ErrInvalidCSV, i+2, len(values))
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(values[4]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: bad amount %q", ErrInvalidCSV, i+2, values[4])
		}

		description := ""
		if len(values) > 5 {
			description = values[5]
		}

		input := models.TransactionInput{
			Date:        strings.TrimSpace(values[0]),
			Type:        models.TransactionType(strings.TrimSpace(values[1])),
			Category:    models.Category(strings.TrimSpace(values[2])),
			Asset:       values[3],
			Amount:      amount,
			Description: description,
		}
		if err := input.Validate(); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidCSV, i+2, err)
		}
		txs = append(txs, input.Transaction(uuid.NewString()))
	}
	return txs, nil
}
