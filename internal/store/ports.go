// Package store defines the data-access ports the rest of the application
// depends on. Implementations live in internal/storage (SQLite) and
// internal/store/memory.
package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"findash/internal/core"
)

// ErrNotFound is returned when an entity with the requested id does not exist.
var ErrNotFound = errors.New("not found")

// ListParams controls pagination and filtering of transaction listings.
// Limit 0 returns no rows; a negative Limit returns everything.
// Category is optional; the empty string matches all categories.
type ListParams struct {
	Skip     int
	Limit    int
	Category core.Category
}

// DefaultListParams returns the pagination defaults (skip 0, limit 100).
func DefaultListParams() ListParams {
	return ListParams{Limit: 100}
}

// Ports for the persistence layer. Callers validate inputs before writing;
// stores only fill in persistence defaults (ids, timestamps, zero dates).
type (
	TransactionWriter interface {
		// CreateTransaction persists a new transaction and returns it with
		// its assigned id and created_at. A zero Date defaults to now.
		CreateTransaction(ctx context.Context, tc core.TransactionCreate) (core.Transaction, error)

		// DeleteTransaction removes the transaction with the given id and
		// reports whether a row was actually removed.
		DeleteTransaction(ctx context.Context, id int64) (bool, error)
	}

	TransactionReader interface {
		// GetTransaction returns ErrNotFound when no transaction has the id.
		GetTransaction(ctx context.Context, id int64) (core.Transaction, error)

		// ListTransactions returns transactions ordered by date descending.
		ListTransactions(ctx context.Context, p ListParams) ([]core.Transaction, error)
	}

	AccountStore interface {
		CreateAccount(ctx context.Context, ac core.AccountCreate) (core.Account, error)
		ListAccounts(ctx context.Context) ([]core.Account, error)
	}

	// DashboardReader provides the aggregate queries behind the dashboard.
	DashboardReader interface {
		// TotalIncome sums all income amounts; 0.00 when none exist.
		TotalIncome(ctx context.Context) (decimal.Decimal, error)

		// TotalExpenses sums all expense amounts; 0.00 when none exist.
		TotalExpenses(ctx context.Context) (decimal.Decimal, error)

		// TransactionCount counts all transactions regardless of type.
		TransactionCount(ctx context.Context) (int64, error)

		// TopExpenseCategory returns the category with the largest summed
		// expense amount, or nil when there are no expense transactions.
		TopExpenseCategory(ctx context.Context) (*core.Category, error)
	}

	// Store is the full persistence capability backing the HTTP API.
	Store interface {
		TransactionWriter
		TransactionReader
		AccountStore
		DashboardReader

		// Ping reports whether the store is reachable.
		Ping(ctx context.Context) error
	}
)
