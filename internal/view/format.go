// Package view turns controller state into display-ready view models. Every
// function here is pure: the same inputs always render the same output.
package view

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"bizdesk/internal/models"

	"github.com/shopspring/decimal"
)

// Fallbacks for expenses whose category is missing or unknown.
const (
	NoCategory           = "No Category"
	DefaultCategoryColor = "#6c757d"
	DefaultCategoryIcon  = "tag"
)

// DisplayDateLayout is how calendar dates are shown.
const DisplayDateLayout = "Jan 2, 2006"

// Money formats an amount with a dollar sign and two decimals.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// DisplayDate formats d for display, or "N/A" when unset.
func DisplayDate(d models.Date) string {
	if d.IsZero() {
		return "N/A"
	}
	return d.Time().Format(DisplayDateLayout)
}

// RelativeDay describes d relative to today: "Today", "Yesterday",
// "N days ago" within the last week, otherwise the date itself.
func RelativeDay(d, today models.Date) string {
	if d.IsZero() {
		return "N/A"
	}
	switch days := d.DaysUntil(today); {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return DisplayDate(d)
	}
}

// Initials returns the uppercased first letters of first and last name.
func Initials(first, last string) string {
	var b strings.Builder
	for _, s := range []string{first, last} {
		if r, _ := utf8.DecodeRuneInString(strings.TrimSpace(s)); r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// CategoryBadge is how an expense's category is shown.
type CategoryBadge struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Known bool   `json:"known"`
}

// Badge resolves the category referenced by e against known. A missing or
// unknown reference renders as NoCategory with the default colour and icon.
func Badge(e models.Expense, known map[int64]models.Category) CategoryBadge {
	ref := e.CategoryRef()
	if ref == nil {
		return noCategory()
	}
	c, ok := known[*ref]
	if !ok {
		return noCategory()
	}
	badge := CategoryBadge{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon, Known: true}
	if badge.Color == "" {
		badge.Color = DefaultCategoryColor
	}
	if badge.Icon == "" {
		badge.Icon = DefaultCategoryIcon
	}
	if badge.Name == "" {
		badge.Name = NoCategory
	}
	return badge
}

func noCategory() CategoryBadge {
	return CategoryBadge{Name: NoCategory, Color: DefaultCategoryColor, Icon: DefaultCategoryIcon}
}

// CategoryIndex maps categories by id.
func CategoryIndex(categories []models.Category) map[int64]models.Category {
	idx := make(map[int64]models.Category, len(categories))
	for _, c := range categories {
		idx[c.ID] = c
	}
	return idx
}

// FrequencyLabel renders a recurring frequency as "Monthly".
func FrequencyLabel(f models.RecurringFrequency) string {
	if f == "" {
		return ""
	}
	s := strings.ToLower(string(f))
	return strings.ToUpper(s[:1]) + s[1:]
}
