package controller

import (
	"context"
	"sort"
	"time"

	"bizdesk/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RecentLimit is how many recent users and expenses the dashboard shows.
const RecentLimit = 5

// Lister loads a whole collection.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// DashboardData is the dashboard summary.
type DashboardData struct {
	TotalUsers      int
	TotalExpenses   int
	TotalAmount     decimal.Decimal
	MonthAmount     decimal.Decimal
	TotalCategories int
	RecentUsers     []models.User
	RecentExpenses  []models.Expense
	Categories      []models.Category
}

// Dashboard loads the summary shown after sign-in.
type Dashboard struct {
	users      Lister[models.User]
	expenses   Lister[models.Expense]
	categories Lister[models.Category]
	now        func() time.Time
}

// NewDashboard returns a dashboard over the three collections.
func NewDashboard(users Lister[models.User], expenses Lister[models.Expense], categories Lister[models.Category], now func() time.Time) *Dashboard {
	if now == nil {
		now = time.Now
	}
	return &Dashboard{users: users, expenses: expenses, categories: categories, now: now}
}

// Load fetches all three collections in parallel and summarizes them. Any
// failure cancels the other loads and is returned.
func (d *Dashboard) Load(ctx context.Context) (DashboardData, error) {
	var (
		users      []models.User
		expenses   []models.Expense
		categories []models.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = d.users.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = d.expenses.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = d.categories.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardData{}, err
	}

	stats := ComputeExpenseStats(expenses, d.now())
	return DashboardData{
		TotalUsers:      len(users),
		TotalExpenses:   stats.Count,
		TotalAmount:     stats.Total,
		MonthAmount:     stats.MonthTotal,
		TotalCategories: len(categories),
		RecentUsers:     firstN(users, RecentLimit),
		RecentExpenses:  RecentExpenses(expenses, RecentLimit),
		Categories:      categories,
	}, nil
}

// RecentExpenses returns up to n expenses ordered by expense date, newest
// first. Expenses on the same date keep their collection order.
func RecentExpenses(all []models.Expense, n int) []models.Expense {
	sorted := append([]models.Expense(nil), all...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].ExpenseDate.Before(sorted[i].ExpenseDate)
	})
	return firstN(sorted, n)
}

func firstN[T any](s []T, n int) []T {
	if len(s) > n {
		s = s[:n]
	}
	return append([]T(nil), s...)
}
