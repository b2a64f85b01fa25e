package controller

import (
	"context"
	"sync"
	"time"

	"bizdesk/internal/models"
	"bizdesk/internal/validator"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CategorySource lists the known categories.
type CategorySource interface {
	List(ctx context.Context) ([]models.Category, error)
}

// ExpenseStats summarizes the expense collection.
type ExpenseStats struct {
	Count      int
	Total      decimal.Decimal
	MonthTotal decimal.Decimal
	// Categories counts distinct categories referenced by expenses.
	Categories int
	// KnownCategories counts the categories the client knows about.
	KnownCategories int
}

// ComputeExpenseStats aggregates all, taking "this month" from now.
func ComputeExpenseStats(all []models.Expense, now time.Time) ExpenseStats {
	month := models.DateOf(now).MonthKey()
	stats := ExpenseStats{Count: len(all), Total: decimal.Zero, MonthTotal: decimal.Zero}
	seen := make(map[int64]struct{})
	for _, e := range all {
		stats.Total = stats.Total.Add(e.Amount)
		if e.ExpenseDate.MonthKey() == month {
			stats.MonthTotal = stats.MonthTotal.Add(e.Amount)
		}
		if ref := e.CategoryRef(); ref != nil {
			seen[*ref] = struct{}{}
		}
	}
	stats.Categories = len(seen)
	return stats
}

// ExpenseMatcher returns the expense filter: text against description and
// category name, then category id, then month. The category name comes from
// known, so a reference that does not resolve has no name to match.
func ExpenseMatcher(known func(id int64) (models.Category, bool)) func(models.Expense, Criteria) bool {
	return func(e models.Expense, c Criteria) bool {
		ref := e.CategoryRef()
		if c.Text != "" && !containsFold(e.Description, c.Text) {
			if ref == nil {
				return false
			}
			cat, ok := known(*ref)
			if !ok || !containsFold(cat.Name, c.Text) {
				return false
			}
		}
		if c.CategoryID != nil && (ref == nil || *ref != *c.CategoryID) {
			return false
		}
		if c.Month != "" && e.ExpenseDate.MonthKey() != c.Month {
			return false
		}
		return true
	}
}

// ExpenseController is the expense list. It also keeps the known category
// set used to resolve references when rendering.
type ExpenseController struct {
	*ListController[models.Expense, models.ExpenseDraft, ExpenseStats]

	categories CategorySource

	catMu sync.RWMutex
	known []models.Category
}

// NewExpenseController wires an expense list over the given clients.
func NewExpenseController(expenses Backend[models.Expense, models.ExpenseDraft], categories CategorySource, now func() time.Time) *ExpenseController {
	c := &ExpenseController{categories: categories}
	c.ListController = NewListController(Config[models.Expense, models.ExpenseDraft, ExpenseStats]{
		Noun:     "Expense",
		Backend:  expenses,
		Match:    ExpenseMatcher(c.lookup),
		Stats:    ComputeExpenseStats,
		Prepare:  func(d *models.ExpenseDraft) { d.Normalize() },
		Validate: func(d models.ExpenseDraft) error { return validator.Struct(d) },
		Now:      now,
	})
	return c
}

// Refresh reloads expenses and categories in parallel. Both loads run to
// completion; the first failure is returned. Loading reports true until
// both have resolved.
func (c *ExpenseController) Refresh(ctx context.Context) error {
	done := c.begin()
	defer done()

	var g errgroup.Group
	g.Go(func() error {
		return c.ListController.Refresh(ctx)
	})
	g.Go(func() error {
		cats, err := c.categories.List(ctx)
		if err != nil {
			c.fail(err, "Error loading data")
			return err
		}
		c.catMu.Lock()
		c.known = cats
		c.catMu.Unlock()

		// category names feed the text filter
		c.mu.Lock()
		c.recompute()
		c.mu.Unlock()
		return nil
	})
	return g.Wait()
}

func (c *ExpenseController) lookup(id int64) (models.Category, bool) {
	c.catMu.RLock()
	defer c.catMu.RUnlock()
	for _, k := range c.known {
		if k.ID == id {
			return k, true
		}
	}
	return models.Category{}, false
}

// Categories returns the known categories.
func (c *ExpenseController) Categories() []models.Category {
	c.catMu.RLock()
	defer c.catMu.RUnlock()
	return append([]models.Category(nil), c.known...)
}

// Snapshot returns the list state with the known category count filled in.
func (c *ExpenseController) Snapshot() Snapshot[models.Expense, ExpenseStats] {
	s := c.ListController.Snapshot()
	c.catMu.RLock()
	s.Stats.KnownCategories = len(c.known)
	c.catMu.RUnlock()
	return s
}
