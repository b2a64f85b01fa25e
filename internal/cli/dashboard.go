package cli

import (
	"context"

	"bizdesk/internal/controller"
	"bizdesk/internal/view"
)

func (a *App) dashboard(ctx context.Context) error {
	data, err := controller.NewDashboard(a.users, a.expenses, a.categories, a.now).Load(ctx)
	if err != nil {
		return err
	}
	v := view.RenderDashboard(data, a.now())

	a.out.heading("Dashboard")
	a.out.stats(v.Stats)

	a.out.heading("Recent Users")
	if len(v.RecentUsers) == 0 {
		a.out.note("No users found")
	} else {
		rows := make([][]string, 0, len(v.RecentUsers))
		for _, u := range v.RecentUsers {
			rows = append(rows, []string{u.Initials, u.Name, u.Email, u.Joined})
		}
		a.out.table([]string{"", "Name", "Email", "Joined"}, rows)
	}

	a.out.heading("Recent Expenses")
	if len(v.RecentExpenses) == 0 {
		a.out.note("No expenses found")
		return nil
	}
	rows := make([][]string, 0, len(v.RecentExpenses))
	for _, e := range v.RecentExpenses {
		rows = append(rows, []string{e.Description, e.Category.Name, e.Amount, e.When})
	}
	a.out.table([]string{"Description", "Category", "Amount", "When"}, rows)
	return nil
}

func (a *App) categoriesCmd(ctx context.Context) error {
	cats, err := a.categories.List(ctx)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		a.out.note("No categories found")
		return nil
	}
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{formatID(c.ID), c.Name, c.Color, c.Icon, c.Description})
	}
	a.out.table([]string{"ID", "Name", "Color", "Icon", "Description"}, rows)
	return nil
}
