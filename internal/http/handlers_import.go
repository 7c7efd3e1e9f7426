package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"findash/internal/importer"
)

func (s *Server) handleUploadCSV(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(header.Filename, ".csv") {
		respondDetail(w, http.StatusBadRequest, "File must be a CSV")
		return
	}

	report, err := importer.ImportTransactions(r.Context(), s.transactions, file)
	if err != nil {
		var missing *importer.MissingColumnsError
		switch {
		case errors.Is(err, importer.ErrEmptyFile):
			respondDetail(w, http.StatusBadRequest, "CSV file is empty")
		case errors.As(err, &missing):
			respondDetail(w, http.StatusBadRequest,
				fmt.Sprintf("Missing required columns: %v", missing.Columns))
		case errors.Is(err, importer.ErrInvalidFormat):
			respondDetail(w, http.StatusBadRequest, "Invalid CSV format")
		default:
			slog.ErrorContext(r.Context(), "CSV import error", "error", err,
				"filename", header.Filename)
			respondDetail(w, http.StatusInternalServerError,
				"Error processing CSV: "+err.Error())
		}
		return
	}

	slog.InfoContext(r.Context(), "CSV import completed",
		"filename", header.Filename,
		"successful_imports", report.SuccessfulImports,
		"total_rows", report.TotalRows,
		"errors", len(report.Errors))

	if report.SuccessfulImports > 0 {
		s.invalidateSummary()
	}
	respondJSON(w, http.StatusOK, report)
}
