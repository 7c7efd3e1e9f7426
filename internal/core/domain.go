package core

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	Income   TransactionType = "income"
	Expense  TransactionType = "expense"
	Transfer TransactionType = "transfer"
)

const (
	// Income categories
	Salary      Category = "salary"
	Freelance   Category = "freelance"
	Investment  Category = "investment"
	OtherIncome Category = "other_income"

	// Expense categories
	Food          Category = "food"
	Transport     Category = "transport"
	Entertainment Category = "entertainment"
	Utilities     Category = "utilities"
	Rent          Category = "rent"
	Shopping      Category = "shopping"
	Healthcare    Category = "healthcare"
	Education     Category = "education"
	OtherExpense  Category = "other_expense"

	// Transfer category
	TransferCategory Category = "transfer"
)

type (
	TransactionType string
	Category        string

	Transaction struct {
		ID              int64           `json:"id"`
		Amount          decimal.Decimal `json:"amount"`
		Description     string          `json:"description"`
		Category        Category        `json:"category"`
		TransactionType TransactionType `json:"transaction_type"`
		Date            time.Time       `json:"date"`
		CreatedAt       time.Time       `json:"created_at"`
	}

	// TransactionCreate carries the caller-supplied fields for a new
	// transaction. A zero Date means "now" and is filled in by the store.
	TransactionCreate struct {
		Amount          decimal.Decimal `json:"amount"`
		Description     string          `json:"description"`
		Category        Category        `json:"category"`
		TransactionType TransactionType `json:"transaction_type"`
		Date            time.Time       `json:"date"`
	}

	Account struct {
		ID          int64           `json:"id"`
		Name        string          `json:"name"`
		AccountType string          `json:"account_type"`
		Balance     decimal.Decimal `json:"balance"`
		CreatedAt   time.Time       `json:"created_at"`
		UpdatedAt   time.Time       `json:"updated_at"`
	}

	AccountCreate struct {
		Name        string          `json:"name"`
		AccountType string          `json:"account_type"`
		Balance     decimal.Decimal `json:"balance"`
	}
)

var (
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrEmptyDescription       = errors.New("empty description")
	ErrInvalidCategory        = errors.New("invalid category")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrEmptyName              = errors.New("empty name")
	ErrEmptyAccountType       = errors.New("empty account type")
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense, Transfer:
		return true
	}
	return false
}

// TransactionTypes returns all valid transaction types.
func TransactionTypes() []TransactionType {
	return []TransactionType{Income, Expense, Transfer}
}

// IsValid reports whether c is one of the known categories.
// Categories are not tied to a compatible transaction type: rent income
// is accepted just like rent expense.
func (c Category) IsValid() bool {
	switch c {
	case Salary, Freelance, Investment, OtherIncome,
		Food, Transport, Entertainment, Utilities, Rent,
		Shopping, Healthcare, Education, OtherExpense,
		TransferCategory:
		return true
	}
	return false
}

// Categories returns all valid categories.
func Categories() []Category {
	return []Category{
		Salary, Freelance, Investment, OtherIncome,
		Food, Transport, Entertainment, Utilities, Rent,
		Shopping, Healthcare, Education, OtherExpense,
		TransferCategory,
	}
}

func (tc TransactionCreate) Validate() error {
	if !tc.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	// Length limits count characters, not bytes.
	switch n := utf8.RuneCountInString(tc.Description); {
	case n == 0:
		return ErrEmptyDescription
	case n > 255:
		return errors.New("description too long (max 255 characters)")
	}
	if !tc.Category.IsValid() {
		return ErrInvalidCategory
	}
	if !tc.TransactionType.IsValid() {
		return ErrInvalidTransactionType
	}
	return nil
}

func (ac AccountCreate) Validate() error {
	switch n := utf8.RuneCountInString(ac.Name); {
	case n == 0:
		return ErrEmptyName
	case n > 100:
		return errors.New("name too long (max 100 characters)")
	}
	switch n := utf8.RuneCountInString(ac.AccountType); {
	case n == 0:
		return ErrEmptyAccountType
	case n > 50:
		return errors.New("account type too long (max 50 characters)")
	}
	return nil
}
