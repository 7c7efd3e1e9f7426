// Package storage implements the store ports on a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"findash/internal/core"
	"findash/internal/store"
)

// timeLayout is fixed-width UTC so that string comparison in SQL orders
// chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, tc core.TransactionCreate) (core.Transaction, error) {
	now := time.Now().UTC()
	date := tc.Date
	if date.IsZero() {
		date = now
	}
	cents := core.Cents(tc.Amount)

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (amount_cents, description, category, transaction_type, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		cents, tc.Description, string(tc.Category), string(tc.TransactionType),
		formatTime(date), formatTime(now))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("last insert id: %w", err)
	}

	txn := core.Transaction{
		ID:              id,
		Amount:          core.FromCents(cents),
		Description:     tc.Description,
		Category:        tc.Category,
		TransactionType: tc.TransactionType,
		Date:            date,
		CreatedAt:       now,
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", txn.ID,
		"description", txn.Description,
		"amount_cents", cents,
		"category", txn.Category,
		"transaction_type", txn.TransactionType)

	return txn, nil
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, amount_cents, description, category, transaction_type, date, created_at
		 FROM transactions WHERE id = ?`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, store.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return txn, nil
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context, p store.ListParams) ([]core.Transaction, error) {
	query := `SELECT id, amount_cents, description, category, transaction_type, date, created_at
		 FROM transactions`
	args := []any{}
	if p.Category != "" {
		query += ` WHERE category = ?`
		args = append(args, string(p.Category))
	}
	query += ` ORDER BY date DESC, id DESC LIMIT ? OFFSET ?`

	limit := p.Limit
	if limit < 0 {
		limit = -1 // no bound; LIMIT 0 legitimately selects nothing
	}
	args = append(args, limit, p.Skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txns := []core.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txns, nil
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *SQLiteRepository) CreateAccount(ctx context.Context, ac core.AccountCreate) (core.Account, error) {
	now := time.Now().UTC()
	cents := core.Cents(ac.Balance)

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (name, account_type, balance_cents, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		ac.Name, ac.AccountType, cents, formatTime(now), formatTime(now))
	if err != nil {
		return core.Account{}, fmt.Errorf("insert account: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Account{}, fmt.Errorf("last insert id: %w", err)
	}

	return core.Account{
		ID:          id,
		Name:        ac.Name,
		AccountType: ac.AccountType,
		Balance:     core.FromCents(cents),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (r *SQLiteRepository) ListAccounts(ctx context.Context) ([]core.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, account_type, balance_cents, created_at, updated_at
		 FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []core.Account{}
	for rows.Next() {
		var (
			acc                  core.Account
			cents                int64
			createdAt, updatedAt string
		)
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.AccountType, &cents, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		acc.Balance = core.FromCents(cents)
		if acc.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		if acc.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("parse updated_at: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

func (r *SQLiteRepository) TotalIncome(ctx context.Context) (decimal.Decimal, error) {
	return r.totalByType(ctx, core.Income)
}

func (r *SQLiteRepository) TotalExpenses(ctx context.Context) (decimal.Decimal, error) {
	return r.totalByType(ctx, core.Expense)
}

func (r *SQLiteRepository) totalByType(ctx context.Context, t core.TransactionType) (decimal.Decimal, error) {
	var cents int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM transactions WHERE transaction_type = ?`,
		string(t)).Scan(&cents)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total %s: %w", t, err)
	}
	return core.FromCents(cents), nil
}

func (r *SQLiteRepository) TransactionCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("transaction count: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) TopExpenseCategory(ctx context.Context) (*core.Category, error) {
	var category string
	err := r.db.QueryRowContext(ctx,
		`SELECT category FROM transactions WHERE transaction_type = ?
		 GROUP BY category ORDER BY SUM(amount_cents) DESC LIMIT 1`,
		string(core.Expense)).Scan(&category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("top expense category: %w", err)
	}
	cat := core.Category(category)
	return &cat, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanTransaction.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(s scanner) (core.Transaction, error) {
	var (
		txn             core.Transaction
		cents           int64
		category, typ   string
		date, createdAt string
	)
	if err := s.Scan(&txn.ID, &cents, &txn.Description, &category, &typ, &date, &createdAt); err != nil {
		return core.Transaction{}, err
	}
	txn.Amount = core.FromCents(cents)
	txn.Category = core.Category(category)
	txn.TransactionType = core.TransactionType(typ)

	var err error
	if txn.Date, err = parseTime(date); err != nil {
		return core.Transaction{}, fmt.Errorf("parse date: %w", err)
	}
	if txn.CreatedAt, err = parseTime(createdAt); err != nil {
		return core.Transaction{}, fmt.Errorf("parse created_at: %w", err)
	}
	return txn, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
