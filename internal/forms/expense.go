package forms

import (
	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"

	"github.com/shopspring/decimal"
)

// Expense form fields.
const (
	FieldDescription        = "description"
	FieldAmount             = "amount"
	FieldCategoryID         = "categoryId"
	FieldExpenseDate        = "expenseDate"
	FieldPaymentMethod      = "paymentMethod"
	FieldReceiptURL         = "receiptUrl"
	FieldNotes              = "notes"
	FieldIsRecurring        = "isRecurring"
	FieldRecurringFrequency = "recurringFrequency"
)

// ExpenseBinder converts expenses to and from forms. Category ids are
// resolved against Categories, the set known to the client.
type ExpenseBinder struct {
	Categories []models.Category
}

// Values fills a form from e.
func (b ExpenseBinder) Values(e models.Expense) Values {
	v := Values{}
	v.Set(FieldID, formatID(e.ID))
	v.Set(FieldCreatedAt, formatTime(e.CreatedAt))
	v.Set(FieldDescription, e.Description)
	if !e.Amount.IsZero() {
		v.Set(FieldAmount, formatAmount(e.Amount))
	}
	if ref := e.CategoryRef(); ref != nil {
		v.Set(FieldCategoryID, formatID(*ref))
	}
	v.Set(FieldExpenseDate, e.ExpenseDate.String())
	v.Set(FieldPaymentMethod, string(e.PaymentMethod))
	v.Set(FieldReceiptURL, e.ReceiptURL)
	v.Set(FieldNotes, e.Notes)
	if e.IsRecurring {
		v.Set(FieldIsRecurring, "true")
	}
	v.Set(FieldRecurringFrequency, string(e.RecurringFrequency))
	return v
}

// FromValues reads an expense back from a form. Malformed values are
// reported as field errors; missing required values are left for
// validation at submit time.
func (b ExpenseBinder) FromValues(v Values) (models.Expense, error) {
	p := &parser{v: v}
	e := models.Expense{
		Base: models.Base{
			ID:        p.int64(FieldID),
			CreatedAt: p.time(FieldCreatedAt),
		},
		Description:        v.Get(FieldDescription),
		PaymentMethod:      models.PaymentMethod(v.Get(FieldPaymentMethod)),
		ReceiptURL:         v.Get(FieldReceiptURL),
		Notes:              v.Get(FieldNotes),
		IsRecurring:        p.bool(FieldIsRecurring),
		RecurringFrequency: models.RecurringFrequency(v.Get(FieldRecurringFrequency)),
	}

	if s := v.Get(FieldAmount); s != "" {
		amount, err := decimal.NewFromString(s)
		if err != nil {
			p.errs = append(p.errs, apperrors.Invalid(FieldAmount, "decimal"))
		}
		e.Amount = amount
	}
	if s := v.Get(FieldExpenseDate); s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			p.errs = append(p.errs, apperrors.Invalid(FieldExpenseDate, "date"))
		}
		e.ExpenseDate = d
	}
	if id := p.optionalInt64(FieldCategoryID); id != nil && *id != 0 {
		e.Category = b.resolve(*id)
	}

	return e, p.err()
}

// Draft reads the create/update body from a form.
func (b ExpenseBinder) Draft(v Values) (models.ExpenseDraft, error) {
	e, err := b.FromValues(v)
	if err != nil {
		return models.ExpenseDraft{}, err
	}
	d := e.Draft()
	d.Normalize()
	return d, nil
}

// resolve returns the known category with id, or a bare reference when the
// id is unknown.
func (b ExpenseBinder) resolve(id int64) *models.Category {
	for _, c := range b.Categories {
		if c.ID == id {
			found := c
			return &found
		}
	}
	return &models.Category{Base: models.Base{ID: id}}
}

// formatAmount writes every stored digit so the form reads back the same
// value. Display rounding belongs to the view.
func formatAmount(d decimal.Decimal) string {
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return d.StringFixed(places)
}
