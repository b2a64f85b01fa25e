package view

import (
	"strconv"
	"time"

	"bizdesk/internal/controller"
	"bizdesk/internal/models"
	"bizdesk/internal/pagination"
	"bizdesk/internal/ui"
)

// Stat is a labelled summary figure.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PageInfo describes the rendered page.
type PageInfo struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Chrome is the state every list view carries besides its rows.
type Chrome struct {
	Stats        []Stat        `json:"stats"`
	Notice       ui.Notice     `json:"notice"`
	Editor       ui.ModalState `json:"editor"`
	EditorTitle  string        `json:"editorTitle,omitempty"`
	Confirm      ui.ModalState `json:"confirm"`
	Loading      bool          `json:"loading"`
	Empty        bool          `json:"empty"`
	EmptyMessage string        `json:"emptyMessage,omitempty"`
	Page         PageInfo      `json:"page"`
	SelectedID   int64         `json:"selectedId,omitempty"`
}

// ExpenseRow is one rendered expense.
type ExpenseRow struct {
	ID            int64         `json:"id"`
	Date          string        `json:"date"`
	RelativeDay   string        `json:"relativeDay"`
	Description   string        `json:"description"`
	Notes         string        `json:"notes,omitempty"`
	Category      CategoryBadge `json:"category"`
	Amount        string        `json:"amount"`
	Recurring     string        `json:"recurring,omitempty"`
	PaymentMethod string        `json:"paymentMethod"`
	PaymentIcon   string        `json:"paymentIcon"`
	ReceiptURL    string        `json:"receiptUrl,omitempty"`
}

// ExpenseState is the input to RenderExpenses.
type ExpenseState struct {
	Snapshot   controller.Snapshot[models.Expense, controller.ExpenseStats]
	Categories []models.Category
	Now        time.Time
	Page       pagination.PageRequest
}

// ExpenseView is the rendered expense list.
type ExpenseView struct {
	Chrome
	Rows []ExpenseRow `json:"rows"`
}

// RenderExpenses renders the filtered expenses, paged.
func RenderExpenses(s ExpenseState) ExpenseView {
	known := CategoryIndex(s.Categories)
	today := models.DateOf(s.Now)
	page := pagination.Paginate(s.Snapshot.Filtered, s.Page)

	rows := make([]ExpenseRow, 0, len(page.Data))
	for _, e := range page.Data {
		rows = append(rows, ExpenseRow{
			ID:            e.ID,
			Date:          DisplayDate(e.ExpenseDate),
			RelativeDay:   RelativeDay(e.ExpenseDate, today),
			Description:   e.Description,
			Notes:         e.Notes,
			Category:      Badge(e, known),
			Amount:        Money(e.Amount),
			Recurring:     recurringLabel(e),
			PaymentMethod: e.PaymentMethod.Label(),
			PaymentIcon:   e.PaymentMethod.Icon(),
			ReceiptURL:    e.ReceiptURL,
		})
	}

	st := s.Snapshot.Stats
	return ExpenseView{
		Chrome: chrome(s.Snapshot.Notice, s.Snapshot.Editor, s.Snapshot.EditorTitle, s.Snapshot.Confirm,
			s.Snapshot.Loading, selectedID(s.Snapshot.Selected), page, "No expenses found",
			[]Stat{
				{"Total Expenses", strconv.Itoa(st.Count)},
				{"Total Amount", Money(st.Total)},
				{"This Month", Money(st.MonthTotal)},
				{"Categories", strconv.Itoa(st.KnownCategories)},
			}),
		Rows: rows,
	}
}

func recurringLabel(e models.Expense) string {
	if !e.IsRecurring {
		return ""
	}
	if e.RecurringFrequency == "" {
		return "Recurring"
	}
	return "Recurring (" + FrequencyLabel(e.RecurringFrequency) + ")"
}

// UserRow is one rendered user.
type UserRow struct {
	ID          int64  `json:"id"`
	Initials    string `json:"initials"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Joined      string `json:"joined"`
}

// UserState is the input to RenderUsers.
type UserState struct {
	Snapshot controller.Snapshot[models.User, controller.UserStats]
	Now      time.Time
	Page     pagination.PageRequest
}

// UserView is the rendered user list.
type UserView struct {
	Chrome
	Rows []UserRow `json:"rows"`
}

// RenderUsers renders the filtered users, paged.
func RenderUsers(s UserState) UserView {
	today := models.DateOf(s.Now)
	page := pagination.Paginate(s.Snapshot.Filtered, s.Page)

	rows := make([]UserRow, 0, len(page.Data))
	for _, u := range page.Data {
		rows = append(rows, userRow(u, today))
	}

	st := s.Snapshot.Stats
	return UserView{
		Chrome: chrome(s.Snapshot.Notice, s.Snapshot.Editor, s.Snapshot.EditorTitle, s.Snapshot.Confirm,
			s.Snapshot.Loading, selectedID(s.Snapshot.Selected), page, "No users found",
			[]Stat{
				{"Total Users", strconv.Itoa(st.Count)},
				{"Active Users", strconv.Itoa(st.Active)},
				{"New This Month", strconv.Itoa(st.NewThisMonth)},
			}),
		Rows: rows,
	}
}

func userRow(u models.User, today models.Date) UserRow {
	phone := u.PhoneNumber
	if phone == "" {
		phone = "N/A"
	}
	joined := "N/A"
	if !u.CreatedAt.IsZero() {
		joined = RelativeDay(models.DateOf(u.CreatedAt), today)
	}
	return UserRow{
		ID:          u.ID,
		Initials:    Initials(u.FirstName, u.LastName),
		Name:        u.FullName(),
		Email:       u.Email,
		PhoneNumber: phone,
		Joined:      joined,
	}
}

// RecentExpense is a dashboard expense line.
type RecentExpense struct {
	Description string        `json:"description"`
	Category    CategoryBadge `json:"category"`
	Amount      string        `json:"amount"`
	When        string        `json:"when"`
}

// DashboardView is the rendered dashboard.
type DashboardView struct {
	Stats          []Stat          `json:"stats"`
	RecentUsers    []UserRow       `json:"recentUsers"`
	RecentExpenses []RecentExpense `json:"recentExpenses"`
}

// RenderDashboard renders a loaded dashboard.
func RenderDashboard(d controller.DashboardData, now time.Time) DashboardView {
	today := models.DateOf(now)
	known := CategoryIndex(d.Categories)

	users := make([]UserRow, 0, len(d.RecentUsers))
	for _, u := range d.RecentUsers {
		users = append(users, userRow(u, today))
	}
	expenses := make([]RecentExpense, 0, len(d.RecentExpenses))
	for _, e := range d.RecentExpenses {
		expenses = append(expenses, RecentExpense{
			Description: e.Description,
			Category:    Badge(e, known),
			Amount:      Money(e.Amount),
			When:        RelativeDay(e.ExpenseDate, today),
		})
	}

	return DashboardView{
		Stats: []Stat{
			{"Total Users", strconv.Itoa(d.TotalUsers)},
			{"Total Expenses", strconv.Itoa(d.TotalExpenses)},
			{"Total Amount", Money(d.TotalAmount)},
			{"This Month", Money(d.MonthAmount)},
			{"Categories", strconv.Itoa(d.TotalCategories)},
		},
		RecentUsers:    users,
		RecentExpenses: expenses,
	}
}

func chrome[T any](notice ui.Notice, editor ui.ModalState, title string, confirm ui.ModalState,
	loading bool, selected int64, page pagination.PageResponse[T], empty string, stats []Stat) Chrome {
	c := Chrome{
		Stats:       stats,
		Notice:      notice,
		Editor:      editor,
		EditorTitle: title,
		Confirm:     confirm,
		Loading:     loading,
		Empty:       page.TotalItems == 0,
		SelectedID:  selected,
		Page: PageInfo{
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalItems: int(page.TotalItems),
			TotalPages: page.TotalPages,
			HasNext:    page.HasNext(),
			HasPrev:    page.HasPrev(),
		},
	}
	if c.Empty {
		c.EmptyMessage = empty
	}
	return c
}

func selectedID[T controller.Entity](sel *T) int64 {
	if sel == nil {
		return 0
	}
	return (*sel).EntityID()
}
