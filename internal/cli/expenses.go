package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bizdesk/internal/controller"
	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/forms"
	"bizdesk/internal/models"
	"bizdesk/internal/pagination"
	"bizdesk/internal/view"
)

// allMonths disables the month filter.
const allMonths = "all"

func (a *App) expensesCmd(ctx context.Context, args []string) error {
	name, rest, err := subcommand("expenses", args, "list", "show", "add", "edit", "delete")
	if err != nil {
		return err
	}
	c := controller.NewExpenseController(a.expenses, a.categories, a.now)
	switch name {
	case "list":
		return a.listExpenses(ctx, c, rest)
	case "show":
		return a.showExpense(ctx, rest)
	case "add":
		return a.saveExpense(ctx, c, 0, rest)
	case "edit":
		if len(rest) == 0 {
			return fmt.Errorf("usage: bizdesk expenses edit ID field=value...")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		return a.saveExpense(ctx, c, id, rest[1:])
	default:
		return deleteEntity[models.Expense](ctx, a, c, "Expense", rest, func(e models.Expense) string { return e.Description })
	}
}

// monthFilter resolves the -month flag. Empty means the current month.
func monthFilter(flag string, now time.Time) (string, error) {
	switch flag = strings.TrimSpace(flag); flag {
	case "":
		return models.DateOf(now).MonthKey(), nil
	case allMonths:
		return "", nil
	}
	if _, err := time.Parse("2006-01", flag); err != nil {
		return "", apperrors.Validation(apperrors.Invalid("month", "YYYY-MM"))
	}
	return flag, nil
}

func (a *App) listExpenses(ctx context.Context, c *controller.ExpenseController, args []string) error {
	fs := a.flags("expenses list")
	text := fs.String("q", "", "Filter by description or category name")
	category := fs.Int64("category", 0, "Only show this category id")
	month := fs.String("month", "", "Month as YYYY-MM, or 'all' (default: current month)")
	page := fs.Int("page", 1, "Page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	criteria := controller.Criteria{Text: *text}
	var err error
	if criteria.Month, err = monthFilter(*month, a.now()); err != nil {
		return err
	}
	if *category > 0 {
		criteria.CategoryID = category
	}

	if err := c.Refresh(ctx); err != nil {
		return a.failed(c.Notice(), err)
	}
	c.ApplyFilter(criteria)

	v := view.RenderExpenses(view.ExpenseState{
		Snapshot:   c.Snapshot(),
		Categories: c.Categories(),
		Now:        a.now(),
		Page:       pagination.PageRequest{Page: *page, PageSize: a.pageSize},
	})
	title := "Expenses"
	if criteria.Month != "" {
		title += " for " + criteria.Month
	}
	a.out.heading(title)
	a.out.chrome(v.Chrome, "expenses")
	if v.Empty {
		return nil
	}
	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, []string{formatID(r.ID), r.Date, r.Description, r.Category.Name, r.Amount, r.PaymentMethod, r.Recurring})
	}
	a.out.table([]string{"ID", "Date", "Description", "Category", "Amount", "Payment", "Recurring"}, rows)
	return nil
}

func (a *App) showExpense(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: bizdesk expenses show ID")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	e, err := a.expenses.Get(ctx, id)
	if err != nil {
		return err
	}
	cats, err := a.categories.List(ctx)
	if err != nil {
		return err
	}
	row := view.RenderExpenses(view.ExpenseState{
		Snapshot:   controller.Snapshot[models.Expense, controller.ExpenseStats]{Filtered: []models.Expense{e}},
		Categories: cats,
		Now:        a.now(),
	}).Rows[0]

	pairs := [][2]string{
		{"ID", formatID(row.ID)},
		{"Description", row.Description},
		{"Amount", row.Amount},
		{"Date", row.Date + " (" + row.RelativeDay + ")"},
		{"Category", row.Category.Name},
		{"Payment", row.PaymentMethod},
	}
	if row.Recurring != "" {
		pairs = append(pairs, [2]string{"Recurring", row.Recurring})
	}
	if row.ReceiptURL != "" {
		pairs = append(pairs, [2]string{"Receipt", row.ReceiptURL})
	}
	if row.Notes != "" {
		pairs = append(pairs, [2]string{"Notes", row.Notes})
	}
	a.out.detail(pairs)
	return nil
}

// saveExpense creates an expense when id is zero and otherwise updates
// expense id, starting from its current values. A new expense is dated
// today unless expenseDate is given.
func (a *App) saveExpense(ctx context.Context, c *controller.ExpenseController, id int64, pairs []string) error {
	values, err := forms.Parse(pairs)
	if err != nil {
		return err
	}

	if err := c.Refresh(ctx); err != nil {
		return a.failed(c.Notice(), err)
	}
	binder := forms.ExpenseBinder{Categories: c.Categories()}

	if id == 0 {
		c.BeginCreate()
		defaults := forms.Values{}
		defaults.Set(forms.FieldExpenseDate, models.DateOf(a.now()).String())
		defaults.Set(forms.FieldPaymentMethod, string(models.PaymentCash))
		values = defaults.Merge(values)
	} else {
		existing, ok := c.Find(id)
		if !ok || !c.BeginEdit(id) {
			return notFound("Expense", id)
		}
		values = binder.Values(existing).Merge(values)
	}

	draft, err := binder.Draft(values)
	if err != nil {
		return err
	}
	saved, err := c.Submit(ctx, draft)
	if err != nil {
		return a.failed(c.Notice(), err)
	}
	a.out.notice(c.Notice())
	a.out.note(fmt.Sprintf("Expense %d: %s %s on %s", saved.ID, saved.Description, view.Money(saved.Amount), saved.ExpenseDate))
	return nil
}
