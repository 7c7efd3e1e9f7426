package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"findash/internal/core"
	"findash/internal/store"
)

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var tc core.TransactionCreate
	if err := json.NewDecoder(r.Body).Decode(&tc); err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if err := tc.Validate(); err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	txn, err := s.transactions.CreateTransaction(r.Context(), tc)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction create error", "error", err,
			"description", tc.Description)
		respondDetail(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	s.invalidateSummary()
	respondJSON(w, http.StatusOK, txn)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	p := store.DefaultListParams()

	if v := strings.TrimSpace(r.URL.Query().Get("skip")); v != "" {
		if skip, err := strconv.Atoi(v); err == nil && skip >= 0 {
			p.Skip = skip
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		// limit=0 is honored as an empty page; negatives fall back to the default.
		if limit, err := strconv.Atoi(v); err == nil && limit >= 0 {
			p.Limit = limit
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("category")); v != "" {
		cat := core.Category(v)
		if !cat.IsValid() {
			respondDetail(w, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid category '%s'", v))
			return
		}
		p.Category = cat
	}

	txns, err := s.store.ListTransactions(r.Context(), p)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction list error", "error", err,
			"skip", p.Skip, "limit", p.Limit)
		respondDetail(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}
	respondJSON(w, http.StatusOK, txns)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := transactionID(w, r)
	if !ok {
		return
	}

	txn, err := s.store.GetTransaction(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondDetail(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction get error", "error", err, "id", id)
		respondDetail(w, http.StatusInternalServerError, "Failed to get transaction")
		return
	}
	respondJSON(w, http.StatusOK, txn)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := transactionID(w, r)
	if !ok {
		return
	}

	deleted, err := s.transactions.DeleteTransaction(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction delete error", "error", err, "id", id)
		respondDetail(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}
	if !deleted {
		respondDetail(w, http.StatusNotFound, "Transaction not found")
		return
	}

	s.invalidateSummary()
	respondJSON(w, http.StatusOK, messageResponse{Message: "Transaction deleted successfully"})
}

// transactionID parses the {id} path value, writing a 422 on failure.
func transactionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, "Invalid transaction ID")
		return 0, false
	}
	return id, true
}
