package models

import "github.com/shopspring/decimal"

// PaymentMethod is how an expense was paid.
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "CASH"
	PaymentCreditCard    PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard     PaymentMethod = "DEBIT_CARD"
	PaymentBankTransfer  PaymentMethod = "BANK_TRANSFER"
	PaymentDigitalWallet PaymentMethod = "DIGITAL_WALLET"
	PaymentCheck         PaymentMethod = "CHECK"
	PaymentOther         PaymentMethod = "OTHER"
)

// PaymentMethods lists every payment method in display order.
var PaymentMethods = []PaymentMethod{
	PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentBankTransfer,
	PaymentDigitalWallet, PaymentCheck, PaymentOther,
}

// Valid reports whether p is a known payment method.
func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}

// Label returns the human-readable name, e.g. "Credit Card".
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentCash:
		return "Cash"
	case PaymentCreditCard:
		return "Credit Card"
	case PaymentDebitCard:
		return "Debit Card"
	case PaymentBankTransfer:
		return "Bank Transfer"
	case PaymentDigitalWallet:
		return "Digital Wallet"
	case PaymentCheck:
		return "Check"
	case PaymentOther:
		return "Other"
	default:
		return string(p)
	}
}

// Icon returns the icon tag shown next to the label.
func (p PaymentMethod) Icon() string {
	switch p {
	case PaymentCash:
		return "money-bill"
	case PaymentCreditCard, PaymentDebitCard:
		return "credit-card"
	case PaymentBankTransfer:
		return "university"
	case PaymentDigitalWallet:
		return "mobile-alt"
	case PaymentCheck:
		return "money-check"
	default:
		return "question"
	}
}

// RecurringFrequency is how often a recurring expense repeats.
type RecurringFrequency string

const (
	FrequencyDaily     RecurringFrequency = "DAILY"
	FrequencyWeekly    RecurringFrequency = "WEEKLY"
	FrequencyMonthly   RecurringFrequency = "MONTHLY"
	FrequencyQuarterly RecurringFrequency = "QUARTERLY"
	FrequencyYearly    RecurringFrequency = "YEARLY"
)

// RecurringFrequencies lists every frequency in display order.
var RecurringFrequencies = []RecurringFrequency{
	FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly,
}

// Valid reports whether f is a known frequency.
func (f RecurringFrequency) Valid() bool {
	for _, v := range RecurringFrequencies {
		if f == v {
			return true
		}
	}
	return false
}

// Expense is a single spending record.
type Expense struct {
	Base
	Description        string             `gorm:"size:255;not null" json:"description"`
	Amount             decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"amount"`
	ExpenseDate        Date               `gorm:"type:date;not null" json:"expenseDate"`
	CategoryID         *int64             `gorm:"index" json:"-"`
	Category           *Category          `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	PaymentMethod      PaymentMethod      `gorm:"size:32;not null;default:'CASH'" json:"paymentMethod"`
	ReceiptURL         string             `json:"receiptUrl,omitempty"`
	Notes              string             `gorm:"size:500" json:"notes,omitempty"`
	IsRecurring        bool               `json:"isRecurring"`
	RecurringFrequency RecurringFrequency `gorm:"size:16" json:"recurringFrequency,omitempty"`

	// AccountID is the owning sign-in account. It never leaves the server.
	AccountID int64 `gorm:"index;not null" json:"-"`
}

// CategoryRef returns the id of the referenced category, or nil when the
// expense is uncategorised.
func (e Expense) CategoryRef() *int64 {
	if e.Category != nil && e.Category.ID != 0 {
		id := e.Category.ID
		return &id
	}
	if e.CategoryID != nil {
		id := *e.CategoryID
		return &id
	}
	return nil
}

// ExpenseDraft is the create/update body for an Expense.
type ExpenseDraft struct {
	Description        string             `json:"description" binding:"required,min=2,max=255"`
	Amount             decimal.Decimal    `json:"amount" binding:"required,gte=0.01"`
	CategoryID         *int64             `json:"categoryId,omitempty" binding:"omitempty,gt=0"`
	ExpenseDate        Date               `json:"expenseDate" binding:"required"`
	PaymentMethod      PaymentMethod      `json:"paymentMethod,omitempty" binding:"omitempty,payment_method"`
	ReceiptURL         string             `json:"receiptUrl,omitempty" binding:"omitempty,url"`
	Notes              string             `json:"notes,omitempty" binding:"omitempty,max=500"`
	IsRecurring        bool               `json:"isRecurring"`
	RecurringFrequency RecurringFrequency `json:"recurringFrequency,omitempty" binding:"required_if=IsRecurring true,recurring_frequency"`
}

// Normalize applies defaults: CASH when no payment method is given and no
// frequency on a one-off expense.
func (d *ExpenseDraft) Normalize() {
	if d.PaymentMethod == "" {
		d.PaymentMethod = PaymentCash
	}
	if !d.IsRecurring {
		d.RecurringFrequency = ""
	}
}

// Draft returns the body that would recreate e.
func (e Expense) Draft() ExpenseDraft {
	return ExpenseDraft{
		Description:        e.Description,
		Amount:             e.Amount,
		CategoryID:         e.CategoryRef(),
		ExpenseDate:        e.ExpenseDate,
		PaymentMethod:      e.PaymentMethod,
		ReceiptURL:         e.ReceiptURL,
		Notes:              e.Notes,
		IsRecurring:        e.IsRecurring,
		RecurringFrequency: e.RecurringFrequency,
	}
}
