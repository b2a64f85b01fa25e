package validator

import (
	stderrors "errors"
	"testing"
	"time"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"

	"github.com/shopspring/decimal"
)

func validExpenseDraft() models.ExpenseDraft {
	return models.ExpenseDraft{
		Description:   "Team lunch",
		Amount:        decimal.RequireFromString("42.10"),
		ExpenseDate:   models.NewDate(2024, time.June, 3),
		PaymentMethod: models.PaymentCreditCard,
	}
}

func TestStructExpenseDraft(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *models.ExpenseDraft)
		wantField string
	}{
		{"valid", func(d *models.ExpenseDraft) {}, ""},
		{"missing_description", func(d *models.ExpenseDraft) { d.Description = "" }, "description"},
		{"short_description", func(d *models.ExpenseDraft) { d.Description = "x" }, "description"},
		{"zero_amount", func(d *models.ExpenseDraft) { d.Amount = decimal.Zero }, "amount"},
		{"negative_amount", func(d *models.ExpenseDraft) { d.Amount = decimal.NewFromInt(-5) }, "amount"},
		{"sub_cent_amount", func(d *models.ExpenseDraft) { d.Amount = decimal.RequireFromString("0.004") }, "amount"},
		{"one_cent_amount", func(d *models.ExpenseDraft) { d.Amount = decimal.RequireFromString("0.01") }, ""},
		{"missing_date", func(d *models.ExpenseDraft) { d.ExpenseDate = models.Date{} }, "expenseDate"},
		{"bad_payment_method", func(d *models.ExpenseDraft) { d.PaymentMethod = "BARTER" }, "paymentMethod"},
		{"empty_payment_method_allowed", func(d *models.ExpenseDraft) { d.PaymentMethod = "" }, ""},
		{"bad_receipt_url", func(d *models.ExpenseDraft) { d.ReceiptURL = "not a url" }, "receiptUrl"},
		{"recurring_without_frequency", func(d *models.ExpenseDraft) { d.IsRecurring = true }, "recurringFrequency"},
		{"recurring_with_frequency", func(d *models.ExpenseDraft) {
			d.IsRecurring = true
			d.RecurringFrequency = models.FrequencyMonthly
		}, ""},
		{"bad_frequency", func(d *models.ExpenseDraft) {
			d.IsRecurring = true
			d.RecurringFrequency = "HOURLY"
		}, "recurringFrequency"},
		{"zero_category_id", func(d *models.ExpenseDraft) {
			zero := int64(0)
			d.CategoryID = &zero
		}, "categoryId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validExpenseDraft()
			tt.mutate(&d)
			err := Struct(d)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var appErr *apperrors.AppError
			if !stderrors.As(err, &appErr) {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != "VALIDATION_FAILED" {
				t.Errorf("Code = %q", appErr.Code)
			}
			if !appErr.HasField(tt.wantField) {
				t.Errorf("expected field %q in %+v", tt.wantField, appErr.Fields)
			}
		})
	}
}

func TestStructRecurringRequiredIsReportedAsRequired(t *testing.T) {
	d := validExpenseDraft()
	d.IsRecurring = true

	var appErr *apperrors.AppError
	if !stderrors.As(Struct(d), &appErr) {
		t.Fatal("expected AppError")
	}
	if len(appErr.Fields) != 1 {
		t.Fatalf("Fields = %+v, want exactly one", appErr.Fields)
	}
	if got := appErr.Fields[0]; got.Field != "recurringFrequency" || got.Rule != "required" {
		t.Errorf("Fields[0] = %+v", got)
	}
}

func TestStructUserDraft(t *testing.T) {
	tests := []struct {
		name      string
		draft     models.UserDraft
		wantField string
	}{
		{"valid", models.UserDraft{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, ""},
		{"missing_last_name", models.UserDraft{FirstName: "Ada", Email: "ada@example.com"}, "lastName"},
		{"bad_email", models.UserDraft{FirstName: "Ada", LastName: "L", Email: "ada"}, "email"},
		{"long_phone", models.UserDraft{FirstName: "Ada", LastName: "L", Email: "a@b.co", PhoneNumber: "123456789012345678901"}, "phoneNumber"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.draft)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var appErr *apperrors.AppError
			if !stderrors.As(err, &appErr) || !appErr.HasField(tt.wantField) {
				t.Fatalf("expected field %q, got %v", tt.wantField, err)
			}
		})
	}
}

func TestStructRegisterRequest(t *testing.T) {
	req := models.RegisterRequest{
		Email:           "new@example.com",
		Username:        "newbie",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	}
	var appErr *apperrors.AppError
	if !stderrors.As(Struct(req), &appErr) || !appErr.HasField("confirmPassword") {
		t.Fatalf("expected confirmPassword mismatch, got %v", appErr)
	}

	req.ConfirmPassword = "secret1"
	if err := Struct(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
