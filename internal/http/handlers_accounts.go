package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"findash/internal/core"
)

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var ac core.AccountCreate
	if err := json.NewDecoder(r.Body).Decode(&ac); err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if err := ac.Validate(); err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	acc, err := s.store.CreateAccount(r.Context(), ac)
	if err != nil {
		slog.ErrorContext(r.Context(), "Account create error", "error", err, "name", ac.Name)
		respondDetail(w, http.StatusInternalServerError, "Failed to create account")
		return
	}
	respondJSON(w, http.StatusOK, acc)
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.store.ListAccounts(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Account list error", "error", err)
		respondDetail(w, http.StatusInternalServerError, "Failed to list accounts")
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}
