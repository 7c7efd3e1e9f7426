package store

import (
	"context"
	"fmt"

	"findash/internal/core"
)

// Summary composes the dashboard aggregates into a single response.
// Net worth is derived as income minus expenses; it is never persisted.
func Summary(ctx context.Context, d DashboardReader) (core.DashboardSummary, error) {
	income, err := d.TotalIncome(ctx)
	if err != nil {
		return core.DashboardSummary{}, fmt.Errorf("total income: %w", err)
	}
	expenses, err := d.TotalExpenses(ctx)
	if err != nil {
		return core.DashboardSummary{}, fmt.Errorf("total expenses: %w", err)
	}
	count, err := d.TransactionCount(ctx)
	if err != nil {
		return core.DashboardSummary{}, fmt.Errorf("transaction count: %w", err)
	}
	top, err := d.TopExpenseCategory(ctx)
	if err != nil {
		return core.DashboardSummary{}, fmt.Errorf("top expense category: %w", err)
	}

	return core.DashboardSummary{
		TotalIncome:        income,
		TotalExpenses:      expenses,
		NetWorth:           income.Sub(expenses),
		TransactionCount:   count,
		TopExpenseCategory: top,
	}, nil
}
