package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"findash/internal/core"
	"findash/internal/store"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "finance.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func mustAmount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse amount %q: %v", s, err)
	}
	return d
}

func createExpense(t *testing.T, repo *SQLiteRepository, amount string, cat core.Category, date time.Time) core.Transaction {
	t.Helper()
	txn, err := repo.CreateTransaction(context.Background(), core.TransactionCreate{
		Amount:          mustAmount(t, amount),
		Description:     "test expense",
		Category:        cat,
		TransactionType: core.Expense,
		Date:            date,
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return txn
}

func TestTransactionRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	date := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	created := createExpense(t, repo, "12.50", core.Food, date)
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := repo.GetTransaction(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Amount.Equal(mustAmount(t, "12.50")) {
		t.Errorf("amount = %s, want 12.50", got.Amount)
	}
	if got.Category != core.Food || got.TransactionType != core.Expense {
		t.Errorf("got %+v", got)
	}
	if !got.Date.Equal(date) {
		t.Errorf("date = %v, want %v", got.Date, date)
	}
}

func TestGetTransactionNotFound(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.GetTransaction(context.Background(), 99); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListTransactionsOrdering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	// Insert days out of order, with sub-second precision on one pair to
	// exercise the fixed-width date format.
	createExpense(t, repo, "1.00", core.Food, base.AddDate(0, 0, 2))
	createExpense(t, repo, "1.00", core.Food, base)
	createExpense(t, repo, "1.00", core.Food, base.Add(500*time.Millisecond))
	createExpense(t, repo, "1.00", core.Food, base.AddDate(0, 0, 1))

	txns, err := repo.ListTransactions(ctx, store.DefaultListParams())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txns) != 4 {
		t.Fatalf("len = %d, want 4", len(txns))
	}
	for i := 1; i < len(txns); i++ {
		if txns[i].Date.After(txns[i-1].Date) {
			t.Fatalf("not date descending at %d: %v before %v", i, txns[i-1].Date, txns[i].Date)
		}
	}

	page, err := repo.ListTransactions(ctx, store.ListParams{Skip: 1, Limit: 2})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 2 || page[0].ID != txns[1].ID || page[1].ID != txns[2].ID {
		t.Fatalf("page ids = %v, want [%d %d]", page, txns[1].ID, txns[2].ID)
	}

	// Limit 0 selects nothing; a negative limit is unbounded.
	empty, err := repo.ListTransactions(ctx, store.ListParams{Limit: 0})
	if err != nil || len(empty) != 0 {
		t.Fatalf("limit 0 = (%d rows, %v), want (0, nil)", len(empty), err)
	}
	unbounded, err := repo.ListTransactions(ctx, store.ListParams{Limit: -1})
	if err != nil || len(unbounded) != 4 {
		t.Fatalf("limit -1 = (%d rows, %v), want (4, nil)", len(unbounded), err)
	}
}

func TestListTransactionsCategoryFilter(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	createExpense(t, repo, "1.00", core.Food, now)
	createExpense(t, repo, "2.00", core.Rent, now)
	createExpense(t, repo, "3.00", core.Food, now)

	p := store.DefaultListParams()
	p.Category = core.Rent
	txns, err := repo.ListTransactions(ctx, p)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txns) != 1 || txns[0].Category != core.Rent {
		t.Fatalf("txns = %+v", txns)
	}
}

func TestDeleteTransaction(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := createExpense(t, repo, "5.00", core.Food, time.Now().UTC())

	deleted, err := repo.DeleteTransaction(ctx, created.ID)
	if err != nil || !deleted {
		t.Fatalf("delete = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = repo.DeleteTransaction(ctx, created.ID)
	if err != nil || deleted {
		t.Fatalf("second delete = (%v, %v), want (false, nil)", deleted, err)
	}
	if _, err := repo.GetTransaction(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestAggregates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	income, err := repo.TotalIncome(ctx)
	if err != nil || !income.IsZero() {
		t.Fatalf("empty income = (%s, %v)", income, err)
	}
	top, err := repo.TopExpenseCategory(ctx)
	if err != nil || top != nil {
		t.Fatalf("empty top = (%v, %v)", top, err)
	}

	now := time.Now().UTC()
	if _, err := repo.CreateTransaction(ctx, core.TransactionCreate{
		Amount:          mustAmount(t, "100.00"),
		Description:     "pay",
		Category:        core.Salary,
		TransactionType: core.Income,
		Date:            now,
	}); err != nil {
		t.Fatalf("create income: %v", err)
	}
	createExpense(t, repo, "30.00", core.Food, now)
	createExpense(t, repo, "50.00", core.Rent, now)
	createExpense(t, repo, "10.00", core.Food, now)

	summary, err := store.Summary(ctx, repo)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !summary.TotalIncome.Equal(mustAmount(t, "100.00")) {
		t.Errorf("total income = %s", summary.TotalIncome)
	}
	if !summary.TotalExpenses.Equal(mustAmount(t, "90.00")) {
		t.Errorf("total expenses = %s", summary.TotalExpenses)
	}
	if !summary.NetWorth.Equal(mustAmount(t, "10.00")) {
		t.Errorf("net worth = %s", summary.NetWorth)
	}
	if summary.TransactionCount != 4 {
		t.Errorf("count = %d", summary.TransactionCount)
	}
	if summary.TopExpenseCategory == nil || *summary.TopExpenseCategory != core.Rent {
		t.Errorf("top category = %v", summary.TopExpenseCategory)
	}
}

func TestAccounts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateAccount(ctx, core.AccountCreate{
		Name:        "Checking",
		AccountType: "bank",
		Balance:     mustAmount(t, "250.00"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("account = %+v", created)
	}

	if _, err := repo.CreateAccount(ctx, core.AccountCreate{Name: "Savings", AccountType: "bank"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	accounts, err := repo.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("len = %d, want 2", len(accounts))
	}
	if accounts[0].Name != "Checking" || !accounts[0].Balance.Equal(mustAmount(t, "250.00")) {
		t.Errorf("accounts[0] = %+v", accounts[0])
	}
	if !accounts[1].Balance.IsZero() {
		t.Errorf("accounts[1].Balance = %s, want 0", accounts[1].Balance)
	}
}

func TestMigrationsAreIdempotentAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finance.db")

	repo, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	created := createExpense(t, repo, "5.00", core.Food, time.Now().UTC())
	repo.Close()

	repo, err = NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer repo.Close()

	got, err := repo.GetTransaction(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if !got.Amount.Equal(mustAmount(t, "5.00")) {
		t.Fatalf("amount = %s", got.Amount)
	}
}
