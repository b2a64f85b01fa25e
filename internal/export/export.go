// Package export writes users, expenses and categories to JSON, CSV or XLSX.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"bizdesk/internal/controller"
	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"
	"bizdesk/internal/view"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// Format is an output format.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// ParseFormat accepts json, csv or xlsx in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, CSV, XLSX:
		return f, nil
	default:
		return "", apperrors.Validation(apperrors.Invalid("format", "oneof"))
	}
}

// Bundle is everything an export contains.
type Bundle struct {
	ExportedAt time.Time         `json:"exportedAt"`
	Users      []models.User     `json:"users"`
	Expenses   []models.Expense  `json:"expenses"`
	Categories []models.Category `json:"categories"`
}

// Collect loads the three collections in parallel. The first failure cancels
// the remaining loads and is returned.
func Collect(ctx context.Context, users controller.Lister[models.User], expenses controller.Lister[models.Expense], categories controller.Lister[models.Category], now time.Time) (Bundle, error) {
	b := Bundle{ExportedAt: now.UTC()}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		b.Users, err = users.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		b.Expenses, err = expenses.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		b.Categories, err = categories.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

// Write encodes b to w in the given format.
func Write(w io.Writer, f Format, b Bundle) error {
	switch f {
	case JSON:
		return WriteJSON(w, b)
	case CSV:
		return WriteCSV(w, b)
	case XLSX:
		return WriteXLSX(w, b)
	default:
		return apperrors.Validation(apperrors.Invalid("format", "oneof"))
	}
}

// WriteJSON writes the bundle as indented JSON.
func WriteJSON(w io.Writer, b Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

var expenseHeader = []string{"ID", "Date", "Description", "Category", "Amount", "Payment Method", "Recurring", "Frequency", "Notes", "Receipt URL"}

func expenseRecords(b Bundle) [][]string {
	known := view.CategoryIndex(b.Categories)
	rows := make([][]string, 0, len(b.Expenses))
	for _, e := range b.Expenses {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.ExpenseDate.String(),
			e.Description,
			view.Badge(e, known).Name,
			e.Amount.StringFixed(2),
			e.PaymentMethod.Label(),
			strconv.FormatBool(e.IsRecurring),
			view.FrequencyLabel(e.RecurringFrequency),
			e.Notes,
			e.ReceiptURL,
		})
	}
	return rows
}

// WriteCSV writes the expenses table.
func WriteCSV(w io.Writer, b Bundle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(expenseHeader); err != nil {
		return err
	}
	if err := cw.WriteAll(expenseRecords(b)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

var (
	userHeader     = []string{"ID", "First Name", "Last Name", "Email", "Phone Number", "Created At"}
	categoryHeader = []string{"ID", "Name", "Description", "Color", "Icon", "Active"}
)

// WriteXLSX writes one sheet per collection.
func WriteXLSX(w io.Writer, b Bundle) error {
	f := excelize.NewFile()
	defer f.Close()

	users := make([][]string, 0, len(b.Users))
	for _, u := range b.Users {
		users = append(users, []string{
			strconv.FormatInt(u.ID, 10), u.FirstName, u.LastName, u.Email, u.PhoneNumber,
			u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	categories := make([][]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, []string{
			strconv.FormatInt(c.ID, 10), c.Name, c.Description, c.Color, c.Icon, strconv.FormatBool(c.IsActive),
		})
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"Expenses", expenseHeader, expenseRecords(b)},
		{"Users", userHeader, users},
		{"Categories", categoryHeader, categories},
	}
	for i, s := range sheets {
		idx, err := f.NewSheet(s.name)
		if err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		if err := fillSheet(f, s.name, s.header, s.rows); err != nil {
			return err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.Write(w)
}

func fillSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	for r, row := range append([][]string{header}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, r+1, err)
		}
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, 18)
}
