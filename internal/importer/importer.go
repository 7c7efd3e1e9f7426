// Package importer implements bulk CSV import of transactions.
//
// Rows succeed or fail independently: each valid row is committed on its
// own, and a failure in one row never blocks the rows after it.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"findash/internal/core"
)

// maxReportedErrors caps the error list included in the report. Rows past
// the cap are still processed; only their messages are dropped.
const maxReportedErrors = 10

// RequiredColumns are the header columns every import file must carry.
// A date column is not expected; imported rows are dated at import time.
var RequiredColumns = []string{"amount", "description", "category", "transaction_type"}

var (
	ErrEmptyFile     = errors.New("CSV file is empty")
	ErrInvalidFormat = errors.New("invalid CSV format")
)

// MissingColumnsError reports required header columns absent from the file.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %v", e.Columns)
}

// TransactionCreator persists a single validated transaction.
// *services.TransactionService satisfies it.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, tc core.TransactionCreate) (core.Transaction, error)
}

// Report summarises one import run. TotalRows counts every data row,
// failed ones included; Errors holds at most the first ten messages.
type Report struct {
	Message           string   `json:"message"`
	SuccessfulImports int      `json:"successful_imports"`
	TotalRows         int      `json:"total_rows"`
	Errors            []string `json:"errors"`
}

// ImportTransactions reads delimited text from r and creates one
// transaction per valid data row. Row numbering in error messages is
// 1-based and counts from the first data row.
//
// The whole import is rejected (error return) only for content-level
// problems: unparseable text, empty content, or missing header columns.
// Everything else is a per-row error accumulated into the report.
func ImportTransactions(ctx context.Context, creator TransactionCreator, r io.Reader) (Report, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(records) == 0 {
		return Report{}, ErrEmptyFile
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return Report{}, &MissingColumnsError{Columns: missing}
	}

	rows := records[1:]
	report := Report{
		Message:   "CSV processed successfully",
		TotalRows: len(rows),
		Errors:    []string{},
	}

	for i, rec := range rows {
		rowNum := i + 1

		category := strings.TrimSpace(rec[columns["category"]])
		if !core.Category(category).IsValid() {
			report.addError(fmt.Sprintf("Row %d: Invalid category '%s'", rowNum, category))
			continue
		}

		txnType := strings.TrimSpace(rec[columns["transaction_type"]])
		if !core.TransactionType(txnType).IsValid() {
			report.addError(fmt.Sprintf("Row %d: Invalid transaction_type '%s'", rowNum, txnType))
			continue
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(rec[columns["amount"]]))
		if err != nil {
			report.addError(fmt.Sprintf("Row %d: invalid amount '%s'", rowNum, rec[columns["amount"]]))
			continue
		}

		tc := core.TransactionCreate{
			Amount:          amount,
			Description:     rec[columns["description"]],
			Category:        core.Category(category),
			TransactionType: core.TransactionType(txnType),
		}
		if err := tc.Validate(); err != nil {
			report.addError(fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		if _, err := creator.CreateTransaction(ctx, tc); err != nil {
			report.addError(fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		report.SuccessfulImports++
	}

	return report, nil
}

func (r *Report) addError(msg string) {
	if len(r.Errors) < maxReportedErrors {
		r.Errors = append(r.Errors, msg)
	}
}
