// Package memory provides an in-memory Store used by tests and by the
// memory data backend.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"findash/internal/core"
	"findash/internal/store"
)

type Store struct {
	mu           sync.Mutex
	transactions []core.Transaction
	accounts     []core.Account
	nextTxnID    int64
	nextAccID    int64
}

func New() *Store {
	return &Store{nextTxnID: 1, nextAccID: 1}
}

func (s *Store) CreateTransaction(_ context.Context, tc core.TransactionCreate) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	date := tc.Date
	if date.IsZero() {
		date = now
	}

	txn := core.Transaction{
		ID:              s.nextTxnID,
		Amount:          core.FromCents(core.Cents(tc.Amount)),
		Description:     tc.Description,
		Category:        tc.Category,
		TransactionType: tc.TransactionType,
		Date:            date,
		CreatedAt:       now,
	}
	s.nextTxnID++
	s.transactions = append(s.transactions, txn)
	return txn, nil
}

func (s *Store) GetTransaction(_ context.Context, id int64) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, txn := range s.transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return core.Transaction{}, store.ErrNotFound
}

func (s *Store) ListTransactions(_ context.Context, p store.ListParams) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		if p.Category != "" && txn.Category != p.Category {
			continue
		}
		out = append(out, txn)
	}

	// Date descending, newest insertion first on equal dates.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})

	if p.Skip >= len(out) {
		return []core.Transaction{}, nil
	}
	out = out[p.Skip:]
	if p.Limit >= 0 && p.Limit < len(out) {
		out = out[:p.Limit]
	}
	return out, nil
}

func (s *Store) DeleteTransaction(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, txn := range s.transactions {
		if txn.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateAccount(_ context.Context, ac core.AccountCreate) (core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	acc := core.Account{
		ID:          s.nextAccID,
		Name:        ac.Name,
		AccountType: ac.AccountType,
		Balance:     core.FromCents(core.Cents(ac.Balance)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextAccID++
	s.accounts = append(s.accounts, acc)
	return acc, nil
}

func (s *Store) ListAccounts(_ context.Context) ([]core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

func (s *Store) TotalIncome(_ context.Context) (decimal.Decimal, error) {
	return s.totalByType(core.Income), nil
}

func (s *Store) TotalExpenses(_ context.Context) (decimal.Decimal, error) {
	return s.totalByType(core.Expense), nil
}

func (s *Store) totalByType(t core.TransactionType) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cents int64
	for _, txn := range s.transactions {
		if txn.TransactionType == t {
			cents += core.Cents(txn.Amount)
		}
	}
	return core.FromCents(cents)
}

func (s *Store) TransactionCount(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.transactions)), nil
}

func (s *Store) TopExpenseCategory(_ context.Context) (*core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sums := make(map[core.Category]int64)
	var order []core.Category
	for _, txn := range s.transactions {
		if txn.TransactionType != core.Expense {
			continue
		}
		if _, seen := sums[txn.Category]; !seen {
			order = append(order, txn.Category)
		}
		sums[txn.Category] += core.Cents(txn.Amount)
	}
	if len(order) == 0 {
		return nil, nil
	}

	top := order[0]
	for _, cat := range order[1:] {
		if sums[cat] > sums[top] {
			top = cat
		}
	}
	return &top, nil
}

func (s *Store) Ping(context.Context) error { return nil }
