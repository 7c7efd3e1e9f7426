package core

import "github.com/shopspring/decimal"

// DashboardSummary aggregates all persisted transactions.
// TopExpenseCategory is nil when no expense transactions exist.
type DashboardSummary struct {
	TotalIncome        decimal.Decimal `json:"total_income"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	NetWorth           decimal.Decimal `json:"net_worth"`
	TransactionCount   int64           `json:"transaction_count"`
	TopExpenseCategory *Category       `json:"top_expense_category"`
}
