package http

import (
	"log/slog"
	"net/http"

	"findash/internal/store"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if summary, ok := s.summaryCache.Get(summaryCacheKey); ok {
		respondJSON(w, http.StatusOK, summary)
		return
	}

	summary, err := store.Summary(r.Context(), s.store)
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard summary error", "error", err)
		respondDetail(w, http.StatusInternalServerError, "Failed to compute dashboard summary")
		return
	}

	s.summaryCache.Set(summaryCacheKey, summary)
	respondJSON(w, http.StatusOK, summary)
}
