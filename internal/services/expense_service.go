package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"
)

// expenseService handles expenses owned by sign-in accounts.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// List returns the account's expenses in insertion order with their
// categories loaded.
func (s *expenseService) List(ctx context.Context, accountID int64) ([]models.Expense, error) {
	expenses := []models.Expense{}
	err := s.db.WithContext(ctx).
		Preload("Category").
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// Get retrieves one of the account's expenses.
func (s *expenseService) Get(ctx context.Context, accountID, id int64) (*models.Expense, error) {
	var expense models.Expense
	err := s.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND account_id = ?", id, accountID).
		First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// Create stores a new expense for the account.
func (s *expenseService) Create(ctx context.Context, accountID int64, d models.ExpenseDraft) (*models.Expense, error) {
	expense := &models.Expense{AccountID: accountID}
	if err := s.apply(ctx, expense, d); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Omit("Category").Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// Update replaces every editable field of one of the account's expenses.
func (s *expenseService) Update(ctx context.Context, accountID, id int64, d models.ExpenseDraft) (*models.Expense, error) {
	expense, err := s.Get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, expense, d); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Omit("Category").Save(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// Delete removes one of the account's expenses.
func (s *expenseService) Delete(ctx context.Context, accountID, id int64) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// apply copies the draft onto e, resolving the category reference. An
// unknown category is a bad request rather than a missing resource.
func (s *expenseService) apply(ctx context.Context, e *models.Expense, d models.ExpenseDraft) error {
	d.Normalize()

	e.Category = nil
	e.CategoryID = nil
	if d.CategoryID != nil {
		var category models.Category
		err := s.db.WithContext(ctx).First(&category, *d.CategoryID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "Category not found")
		}
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		id := category.ID
		e.CategoryID = &id
		e.Category = &category
	}

	amount := d.Amount.Round(2)
	if !amount.IsPositive() {
		return apperrors.Validation(apperrors.FieldError{Field: "amount", Rule: "gte", Message: "amount must be at least 0.01"})
	}

	e.Description = strings.TrimSpace(d.Description)
	e.Amount = amount
	e.ExpenseDate = d.ExpenseDate
	e.PaymentMethod = d.PaymentMethod
	e.ReceiptURL = strings.TrimSpace(d.ReceiptURL)
	e.Notes = strings.TrimSpace(d.Notes)
	e.IsRecurring = d.IsRecurring
	e.RecurringFrequency = d.RecurringFrequency
	return nil
}
