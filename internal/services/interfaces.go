package services

import (
	"context"

	"bizdesk/internal/models"
)

// AccountServicer defines the contract for sign-in accounts.
type AccountServicer interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error)
	Authenticate(ctx context.Context, username, password string) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	EnsureAdmin(ctx context.Context, username, email, password string) (*models.Account, error)
}

// UserServicer defines the contract for managed user records.
type UserServicer interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, d models.UserDraft) (*models.User, error)
	Update(ctx context.Context, id int64, d models.UserDraft) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// ExpenseServicer defines the contract for expenses. Every call is scoped to
// the owning account; another account's expense reads as not found.
type ExpenseServicer interface {
	List(ctx context.Context, accountID int64) ([]models.Expense, error)
	Get(ctx context.Context, accountID, id int64) (*models.Expense, error)
	Create(ctx context.Context, accountID int64, d models.ExpenseDraft) (*models.Expense, error)
	Update(ctx context.Context, accountID, id int64, d models.ExpenseDraft) (*models.Expense, error)
	Delete(ctx context.Context, accountID, id int64) error
}

// CategoryServicer defines the contract for the read-only category catalogue.
type CategoryServicer interface {
	ListActive(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
}
