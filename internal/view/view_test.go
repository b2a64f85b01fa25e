package view

import (
	"testing"
	"time"

	"bizdesk/internal/controller"
	"bizdesk/internal/models"
	"bizdesk/internal/pagination"
	"bizdesk/internal/ui"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2024, time.May, 20, 15, 0, 0, 0, time.UTC)
	today = models.DateOf(now)
	food  = models.Category{Base: models.Base{ID: 1}, Name: "Food & Dining", Color: "#FF6B6B", Icon: "fas fa-utensils"}
)

func TestRelativeDay(t *testing.T) {
	tests := []struct {
		name string
		date models.Date
		want string
	}{
		{"today", models.NewDate(2024, time.May, 20), "Today"},
		{"yesterday", models.NewDate(2024, time.May, 19), "Yesterday"},
		{"days ago", models.NewDate(2024, time.May, 16), "4 days ago"},
		{"six days", models.NewDate(2024, time.May, 14), "6 days ago"},
		{"a week", models.NewDate(2024, time.May, 13), "May 13, 2024"},
		{"future", models.NewDate(2024, time.June, 1), "Jun 1, 2024"},
		{"zero", models.Date{}, "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDay(tt.date, today))
		})
	}
}

func TestMoneyAndInitials(t *testing.T) {
	assert.Equal(t, "$1234.50", Money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.00", Money(decimal.Zero))
	assert.Equal(t, "JD", Initials("john", "Doe"))
	assert.Equal(t, "É", Initials("élodie", ""))
	assert.Equal(t, "Monthly", FrequencyLabel(models.FrequencyMonthly))
}

func TestBadgeFallback(t *testing.T) {
	known := CategoryIndex([]models.Category{food})
	ghost := models.Category{Base: models.Base{ID: 99}, Name: "Deleted"}

	tests := []struct {
		name string
		cat  *models.Category
		want CategoryBadge
	}{
		{"known", &food, CategoryBadge{ID: 1, Name: "Food & Dining", Color: "#FF6B6B", Icon: "fas fa-utensils", Known: true}},
		{"nil", nil, CategoryBadge{Name: NoCategory, Color: DefaultCategoryColor, Icon: DefaultCategoryIcon}},
		{"unknown id", &ghost, CategoryBadge{Name: NoCategory, Color: DefaultCategoryColor, Icon: DefaultCategoryIcon}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Badge(models.Expense{Category: tt.cat}, known))
		})
	}
}

func expenses(n int) []models.Expense {
	out := make([]models.Expense, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Expense{
			Base:          models.Base{ID: int64(i)},
			Description:   "Item",
			Amount:        decimal.NewFromInt(int64(i)),
			ExpenseDate:   models.NewDate(2024, time.May, 20),
			Category:      &food,
			PaymentMethod: models.PaymentDebitCard,
		})
	}
	return out
}

func TestRenderExpenses(t *testing.T) {
	all := expenses(25)
	all[0].IsRecurring = true
	all[0].RecurringFrequency = models.FrequencyWeekly

	state := ExpenseState{
		Snapshot: controller.Snapshot[models.Expense, controller.ExpenseStats]{
			All:      all,
			Filtered: all,
			Stats:    controller.ExpenseStats{Count: 25, Total: decimal.NewFromInt(325), MonthTotal: decimal.NewFromInt(325), KnownCategories: 1},
			Notice:   ui.Notice{Level: ui.Success, Message: "Expense created successfully!"},
			Editor:   ui.Open,
			Selected: &all[1],
		},
		Categories: []models.Category{food},
		Now:        now,
		Page:       pagination.PageRequest{Page: 1, PageSize: 10},
	}

	v := RenderExpenses(state)
	require.Len(t, v.Rows, 10)
	first := v.Rows[0]
	assert.Equal(t, "May 20, 2024", first.Date)
	assert.Equal(t, "Today", first.RelativeDay)
	assert.Equal(t, "$1.00", first.Amount)
	assert.Equal(t, "Recurring (Weekly)", first.Recurring)
	assert.Equal(t, "Debit Card", first.PaymentMethod)
	assert.True(t, first.Category.Known)
	assert.Empty(t, v.Rows[1].Recurring)

	assert.Equal(t, []Stat{
		{"Total Expenses", "25"},
		{"Total Amount", "$325.00"},
		{"This Month", "$325.00"},
		{"Categories", "1"},
	}, v.Stats)
	assert.Equal(t, PageInfo{Page: 1, PageSize: 10, TotalItems: 25, TotalPages: 3, HasNext: true}, v.Page)
	assert.Equal(t, ui.Open, v.Editor)
	assert.Equal(t, int64(2), v.SelectedID)
	assert.Equal(t, "Expense created successfully!", v.Notice.Message)
	assert.False(t, v.Empty)

	state.Page.Page = 3
	v = RenderExpenses(state)
	require.Len(t, v.Rows, 5)
	assert.Equal(t, int64(21), v.Rows[0].ID)
	assert.True(t, v.Page.HasPrev)
	assert.False(t, v.Page.HasNext)
}

func TestRenderExpensesEmpty(t *testing.T) {
	v := RenderExpenses(ExpenseState{Now: now})
	assert.True(t, v.Empty)
	assert.Equal(t, "No expenses found", v.EmptyMessage)
	assert.NotNil(t, v.Rows)
	assert.Equal(t, ui.Closed, v.Editor)
}

func TestRenderUsers(t *testing.T) {
	users := []models.User{
		{Base: models.Base{ID: 1, CreatedAt: now.AddDate(0, 0, -1)}, FirstName: "John", LastName: "Doe", Email: "john@example.com"},
		{Base: models.Base{ID: 2}, FirstName: "jane", LastName: "smith", Email: "jane@example.com", PhoneNumber: "555"},
	}
	v := RenderUsers(UserState{
		Snapshot: controller.Snapshot[models.User, controller.UserStats]{
			All: users, Filtered: users,
			Stats: controller.UserStats{Count: 2, Active: 2, NewThisMonth: 1},
		},
		Now: now,
	})

	require.Len(t, v.Rows, 2)
	assert.Equal(t, UserRow{ID: 1, Initials: "JD", Name: "John Doe", Email: "john@example.com", PhoneNumber: "N/A", Joined: "Yesterday"}, v.Rows[0])
	assert.Equal(t, "JS", v.Rows[1].Initials)
	assert.Equal(t, "N/A", v.Rows[1].Joined)
	assert.Equal(t, []Stat{{"Total Users", "2"}, {"Active Users", "2"}, {"New This Month", "1"}}, v.Stats)
}

func TestRenderDashboard(t *testing.T) {
	orphan := expenses(1)[0]
	orphan.Category = &models.Category{Base: models.Base{ID: 42}}

	v := RenderDashboard(controller.DashboardData{
		TotalUsers:      3,
		TotalExpenses:   1,
		TotalAmount:     decimal.RequireFromString("1"),
		MonthAmount:     decimal.RequireFromString("1"),
		TotalCategories: 1,
		RecentExpenses:  []models.Expense{orphan},
		Categories:      []models.Category{food},
	}, now)

	require.Len(t, v.RecentExpenses, 1)
	assert.Equal(t, NoCategory, v.RecentExpenses[0].Category.Name)
	assert.Equal(t, "Today", v.RecentExpenses[0].When)
	assert.Equal(t, Stat{"Total Amount", "$1.00"}, v.Stats[2])
	assert.Empty(t, v.RecentUsers)
}
