package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
	"time"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type list[T any] struct {
	items []T
	err   error
}

func (l list[T]) List(ctx context.Context) ([]T, error) { return l.items, l.err }

var (
	exportedAt = time.Date(2024, time.May, 20, 8, 0, 0, 0, time.UTC)
	food       = models.Category{Base: models.Base{ID: 1}, Name: "Food & Dining", Color: "#FF6B6B", IsActive: true}
)

func bundle() Bundle {
	return Bundle{
		ExportedAt: exportedAt,
		Users: []models.User{
			{Base: models.Base{ID: 1, CreatedAt: exportedAt}, FirstName: "John", LastName: "Doe", Email: "john@example.com"},
		},
		Expenses: []models.Expense{
			{Base: models.Base{ID: 3}, Description: "Lunch, with team", Amount: decimal.RequireFromString("12.5"),
				ExpenseDate: models.NewDate(2024, time.May, 2), Category: &food, PaymentMethod: models.PaymentCreditCard},
			{Base: models.Base{ID: 4}, Description: "Gym", Amount: decimal.RequireFromString("40"),
				ExpenseDate: models.NewDate(2024, time.May, 3), PaymentMethod: models.PaymentCash,
				IsRecurring: true, RecurringFrequency: models.FrequencyMonthly},
		},
		Categories: []models.Category{food},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", JSON, false},
		{" CSV ", CSV, false},
		{"Xlsx", XLSX, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollect(t *testing.T) {
	b := bundle()
	got, err := Collect(context.Background(),
		list[models.User]{items: b.Users},
		list[models.Expense]{items: b.Expenses},
		list[models.Category]{items: b.Categories},
		exportedAt)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = Collect(context.Background(),
		list[models.User]{items: b.Users},
		list[models.Expense]{err: apperrors.ErrNetwork},
		list[models.Category]{},
		exportedAt)
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, bundle()))

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.ElementsMatch(t, []string{"exportedAt", "users", "expenses", "categories"}, keys(decoded))
	assert.JSONEq(t, `"2024-05-20T08:00:00Z"`, string(decoded["exportedAt"]))
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, CSV, bundle()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, expenseHeader, records[0])
	assert.Equal(t, []string{"3", "2024-05-02", "Lunch, with team", "Food & Dining", "12.50", "Credit Card", "false", "", "", ""}, records[1])
	assert.Equal(t, "No Category", records[2][3])
	assert.Equal(t, "Monthly", records[2][7])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, XLSX, bundle()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Expenses", "Users", "Categories"}, f.GetSheetList())

	rows, err := f.GetRows("Expenses")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "12.50", rows[1][4])

	rows, err = f.GetRows("Users")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "John", "Doe", "john@example.com", "", "2024-05-20T08:00:00Z"}, rows[1])

	rows, err = f.GetRows("Categories")
	require.NoError(t, err)
	assert.Equal(t, "Food & Dining", rows[1][1])
}
