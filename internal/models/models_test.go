package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.March, 9)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-03-09"` {
		t.Errorf("Marshal = %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("Unmarshal = %v, want %v", back, d)
	}

	var zero Date
	b, _ = json.Marshal(zero)
	if string(b) != "null" {
		t.Errorf("zero Marshal = %s, want null", b)
	}
	if err := json.Unmarshal([]byte("null"), &back); err != nil || !back.IsZero() {
		t.Errorf("Unmarshal(null) = %v, %v", back, err)
	}
	if err := json.Unmarshal([]byte(`"09/03/2024"`), &back); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDateScan(t *testing.T) {
	want := NewDate(2024, time.January, 31)
	tests := []struct {
		name  string
		value any
	}{
		{"time", time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)},
		{"string", "2024-01-31"},
		{"timestamp_string", "2024-01-31T00:00:00Z"},
		{"bytes", []byte("2024-01-31")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.value); err != nil {
				t.Fatalf("Scan() error: %v", err)
			}
			if !d.Equal(want) {
				t.Errorf("Scan() = %v, want %v", d, want)
			}
		})
	}

	var d Date
	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestDateHelpers(t *testing.T) {
	d := NewDate(2024, time.December, 5)
	if d.MonthKey() != "2024-12" {
		t.Errorf("MonthKey() = %q", d.MonthKey())
	}
	if got := d.DaysUntil(NewDate(2024, time.December, 8)); got != 3 {
		t.Errorf("DaysUntil() = %d, want 3", got)
	}
	if (Date{}).String() != "" {
		t.Error("zero date should format as empty string")
	}
}

func TestExpenseCategoryRef(t *testing.T) {
	id := int64(4)
	tests := []struct {
		name string
		e    Expense
		want *int64
	}{
		{"nested_category", Expense{Category: &Category{Base: Base{ID: 7}}}, ptr(int64(7))},
		{"category_id_only", Expense{CategoryID: &id}, ptr(int64(4))},
		{"uncategorised", Expense{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.e.CategoryRef()
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("CategoryRef() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("CategoryRef() = %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestExpenseJSONShape(t *testing.T) {
	e := Expense{
		Base:          Base{ID: 3},
		Description:   "Lunch",
		Amount:        decimal.RequireFromString("12.50"),
		ExpenseDate:   NewDate(2024, time.May, 1),
		PaymentMethod: PaymentCreditCard,
		Category:      &Category{Base: Base{ID: 1}, Name: "Food & Dining"},
	}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "description", "amount", "expenseDate", "category", "paymentMethod", "isRecurring"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, b)
		}
	}
	if _, ok := raw["recurringFrequency"]; ok {
		t.Errorf("recurringFrequency should be omitted when empty: %s", b)
	}
}

func TestPaymentMethodLabel(t *testing.T) {
	tests := map[PaymentMethod]string{
		PaymentCreditCard:    "Credit Card",
		PaymentDigitalWallet: "Digital Wallet",
		PaymentCash:          "Cash",
		"BARTER":             "BARTER",
	}
	for in, want := range tests {
		if got := in.Label(); got != want {
			t.Errorf("%s.Label() = %q, want %q", in, got, want)
		}
	}
	if PaymentMethod("BARTER").Valid() {
		t.Error("BARTER should not be valid")
	}
}

func TestExpenseDraftNormalize(t *testing.T) {
	d := ExpenseDraft{RecurringFrequency: FrequencyMonthly}
	d.Normalize()
	if d.PaymentMethod != PaymentCash {
		t.Errorf("PaymentMethod = %q, want CASH", d.PaymentMethod)
	}
	if d.RecurringFrequency != "" {
		t.Errorf("RecurringFrequency = %q, want cleared", d.RecurringFrequency)
	}
}

func ptr[T any](v T) *T { return &v }
