package core

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

func TestTransactionTypeIsValid(t *testing.T) {
	for _, typ := range TransactionTypes() {
		if !typ.IsValid() {
			t.Fatalf("expected %q to be valid", typ)
		}
	}
	for _, typ := range []TransactionType{"", "INCOME", "bogus", "income "} {
		if typ.IsValid() {
			t.Fatalf("expected %q to be invalid", typ)
		}
	}
}

func TestCategoryIsValid(t *testing.T) {
	if got := len(Categories()); got != 14 {
		t.Fatalf("expected 14 categories, got %d", got)
	}
	for _, cat := range Categories() {
		if !cat.IsValid() {
			t.Fatalf("expected %q to be valid", cat)
		}
	}
	for _, cat := range []Category{"", "FOOD", "groceries"} {
		if cat.IsValid() {
			t.Fatalf("expected %q to be invalid", cat)
		}
	}
}

func TestTransactionCreateValidate(t *testing.T) {
	good := TransactionCreate{
		Amount:          decimal.NewFromFloat(12.34),
		Description:     "lunch",
		Category:        Food,
		TransactionType: Expense,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Categories are not tied to transaction types: rent income passes.
	permissive := good
	permissive.Category = Rent
	permissive.TransactionType = Income
	if err := permissive.Validate(); err != nil {
		t.Fatalf("expected rent income to be accepted, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*TransactionCreate)
		want   error
	}{
		{"zero amount", func(tc *TransactionCreate) { tc.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(tc *TransactionCreate) { tc.Amount = decimal.NewFromInt(-5) }, ErrInvalidAmount},
		{"empty description", func(tc *TransactionCreate) { tc.Description = "" }, ErrEmptyDescription},
		{"long description", func(tc *TransactionCreate) { tc.Description = strings.Repeat("x", 256) }, nil},
		{"long multibyte description", func(tc *TransactionCreate) { tc.Description = strings.Repeat("é", 256) }, nil},
		{"bad category", func(tc *TransactionCreate) { tc.Category = "groceries" }, ErrInvalidCategory},
		{"bad type", func(tc *TransactionCreate) { tc.TransactionType = "credit" }, ErrInvalidTransactionType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := good
			tc.mutate(&in)
			err := in.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

// Length limits are in characters: a whitespace-only description counts as
// one character, and multibyte text is not penalised for its byte width.
func TestTransactionCreateValidateLength(t *testing.T) {
	good := TransactionCreate{
		Amount:          decimal.NewFromInt(1),
		Category:        Food,
		TransactionType: Expense,
	}

	accepted := []string{
		" ",
		strings.Repeat("é", 200), // 400 bytes, 200 characters
		strings.Repeat("x", 255),
	}
	for _, desc := range accepted {
		in := good
		in.Description = desc
		if err := in.Validate(); err != nil {
			t.Errorf("description of %d characters rejected: %v", utf8.RuneCountInString(desc), err)
		}
	}

	in := good
	in.Description = strings.Repeat("é", 256)
	if err := in.Validate(); err == nil {
		t.Error("expected 256-character description to be rejected")
	}
}

func TestAccountCreateValidate(t *testing.T) {
	good := AccountCreate{Name: "Checking", AccountType: "bank"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Balance defaults to zero and negatives are allowed.
	overdrawn := good
	overdrawn.Balance = decimal.NewFromFloat(-10.50)
	if err := overdrawn.Validate(); err != nil {
		t.Fatalf("expected negative balance to be accepted, got %v", err)
	}

	// Name length counts characters; a lone space is one.
	spaced := good
	spaced.Name = " "
	if err := spaced.Validate(); err != nil {
		t.Fatalf("expected single-space name to be accepted, got %v", err)
	}
	wide := good
	wide.Name = strings.Repeat("é", 100)
	if err := wide.Validate(); err != nil {
		t.Fatalf("expected 100-character multibyte name to be accepted, got %v", err)
	}

	bads := []AccountCreate{
		{Name: "", AccountType: "bank"},
		{Name: strings.Repeat("é", 101), AccountType: "bank"},
		{Name: "Checking", AccountType: ""},
		{Name: "Checking", AccountType: strings.Repeat("x", 51)},
	}
	for i, ac := range bads {
		if err := ac.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
