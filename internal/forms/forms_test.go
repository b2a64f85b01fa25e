package forms

import (
	"errors"
	"testing"
	"time"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var travel = models.Category{Base: models.Base{ID: 8}, Name: "Travel", Color: "#F7DC6F", Icon: "fas fa-plane", IsActive: true}

func fullExpense() models.Expense {
	return models.Expense{
		Base:               models.Base{ID: 12, CreatedAt: time.Date(2024, time.April, 1, 9, 30, 15, 123000000, time.UTC)},
		Description:        "Flight to Lisbon",
		Amount:             decimal.RequireFromString("289.90"),
		ExpenseDate:        models.NewDate(2024, time.April, 3),
		Category:           &travel,
		PaymentMethod:      models.PaymentCreditCard,
		ReceiptURL:         "https://receipts.example.com/12",
		Notes:              "Conference trip",
		IsRecurring:        true,
		RecurringFrequency: models.FrequencyYearly,
	}
}

func TestExpenseRoundTrip(t *testing.T) {
	b := ExpenseBinder{Categories: []models.Category{travel}}
	e := fullExpense()

	v := b.Values(e)
	assert.Equal(t, "289.90", v[FieldAmount])
	assert.Equal(t, "8", v[FieldCategoryID])
	assert.Equal(t, "2024-04-03", v[FieldExpenseDate])
	assert.Equal(t, "true", v[FieldIsRecurring])

	back, err := b.FromValues(v)
	require.NoError(t, err)
	assert.Equal(t, e, back)
}

func TestExpenseRoundTripKeepsSubCentDigits(t *testing.T) {
	b := ExpenseBinder{Categories: []models.Category{travel}}
	for _, amount := range []string{"12.345", "0.5", "7", "1999.999"} {
		e := fullExpense()
		e.Amount = decimal.RequireFromString(amount)

		v := b.Values(e)
		assert.Equal(t, amount, v[FieldAmount])

		back, err := b.FromValues(v)
		require.NoError(t, err)
		assert.True(t, back.Amount.Equal(e.Amount), "amount %s came back as %s", amount, back.Amount)
		assert.Equal(t, e, back)
	}
}

func TestUserRoundTrip(t *testing.T) {
	u := models.User{
		Base:        models.Base{ID: 5, CreatedAt: time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)},
		FirstName:   "Alice",
		LastName:    "Brown",
		Email:       "alice.brown@example.com",
		PhoneNumber: "1111111111",
	}
	back, err := UserFromValues(UserValues(u))
	require.NoError(t, err)
	assert.Equal(t, u, back)
}

func TestExpenseUnknownCategoryKeepsReference(t *testing.T) {
	b := ExpenseBinder{Categories: []models.Category{travel}}
	e, err := b.FromValues(Values{FieldCategoryID: "77", FieldDescription: "Mystery"})
	require.NoError(t, err)
	require.NotNil(t, e.Category)
	assert.Equal(t, int64(77), e.Category.ID)
	assert.Empty(t, e.Category.Name)
}

func TestExpenseFromValuesReportsMalformedFields(t *testing.T) {
	b := ExpenseBinder{}
	_, err := b.FromValues(Values{
		FieldAmount:      "twelve",
		FieldExpenseDate: "03/04/2024",
		FieldCategoryID:  "x",
		FieldIsRecurring: "sometimes",
	})

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	for _, f := range []string{FieldAmount, FieldExpenseDate, FieldCategoryID, FieldIsRecurring} {
		assert.True(t, appErr.HasField(f), "missing field error for %s", f)
	}
}

func TestExpenseDraft(t *testing.T) {
	b := ExpenseBinder{Categories: []models.Category{travel}}

	d, err := b.Draft(Values{
		FieldDescription:        "Taxi",
		FieldAmount:             "18.5",
		FieldExpenseDate:        "2024-05-02",
		FieldCategoryID:         "8",
		FieldRecurringFrequency: "WEEKLY",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCash, d.PaymentMethod)
	assert.Empty(t, d.RecurringFrequency, "frequency is dropped for one-off expenses")
	require.NotNil(t, d.CategoryID)
	assert.Equal(t, int64(8), *d.CategoryID)
}

func TestUserDraftFromValues(t *testing.T) {
	d, err := UserDraftFromValues(Values{FieldFirstName: " Ada ", FieldLastName: "Lovelace", FieldEmail: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, models.UserDraft{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, d)
}

func TestParse(t *testing.T) {
	v, err := Parse([]string{"description=Lunch with team", "notes=a=b", "amount=12"})
	require.NoError(t, err)
	assert.Equal(t, "Lunch with team", v.Get(FieldDescription))
	assert.Equal(t, "a=b", v.Get(FieldNotes))
	assert.Equal(t, []string{"amount", "description", "notes"}, v.Fields())

	_, err = Parse([]string{"oops"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestMerge(t *testing.T) {
	base := Values{FieldDescription: "Old", FieldAmount: "1.00"}
	merged := base.Merge(Values{FieldDescription: "New"})
	assert.Equal(t, "New", merged.Get(FieldDescription))
	assert.Equal(t, "1.00", merged.Get(FieldAmount))
	assert.Equal(t, "Old", base.Get(FieldDescription), "Merge must not modify the receiver")
}
