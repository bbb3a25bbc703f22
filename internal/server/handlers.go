package server

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/common"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/models"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/services/backup"
)

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": common.GetVersion(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// --- Ledger handlers ---

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"transactions": s.app.Tracker.ListTransactions(),
		})
	case http.MethodPost:
		var input models.TransactionInput
		if !DecodeJSON(w, r, &input) {
			return
		}
		if err := input.Validate(); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		tx, err := s.app.Tracker.AddTransaction(r.Context(), input)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error adding transaction: %v", err))
			return
		}
		WriteJSON(w, http.StatusCreated, tx)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	id := PathParam(r, "/api/transactions/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Transaction id is required in path")
		return
	}

	// Deleting an unknown id is a no-op, not an error.
	if err := s.app.Tracker.DeleteTransaction(r.Context(), id); err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error deleting transaction: %v", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Portfolio handlers ---

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		WriteJSON(w, http.StatusOK, s.app.Tracker.GetPortfolio())
	case http.MethodPut:
		var p models.Portfolio
		if !DecodeJSON(w, r, &p) {
			return
		}
		if err := s.app.Tracker.SetPortfolio(r.Context(), p); err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error updating portfolio: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, p)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPut)
	}
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.app.Tracker.GetTotals())
}

// --- Import/export handlers ---

func (s *Server) handleExportBackup(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	data, err := s.app.Tracker.ExportBackup()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error exporting backup: %v", err))
		return
	}

	filename := fmt.Sprintf("financial-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	csv := s.app.Tracker.ExportCSV()

	filename := fmt.Sprintf("financial-data-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, csv)
}

// handleImport accepts either a backup document (application/json) or CSV
// text (text/csv), selected by Content-Type. A parse failure rejects the
// whole import with no store mutation.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 10<<20) // 10MB limit
	data, err := io.ReadAll(r.Body)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mt
	}

	switch {
	case contentType == "text/csv" || strings.HasSuffix(contentType, "+csv"):
		err = s.app.Tracker.ImportCSV(r.Context(), data)
	case contentType == "application/json" || contentType == "":
		err = s.app.Tracker.ImportBackup(r.Context(), data)
	default:
		WriteError(w, http.StatusUnsupportedMediaType, fmt.Sprintf("Unsupported import format: %s", contentType))
		return
	}

	if err != nil {
		if errors.Is(err, backup.ErrInvalidBackup) || errors.Is(err, backup.ErrInvalidCSV) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Import failed: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}
