package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"bizdesk/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the password of every account created by CreateTestAccount.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates an enabled sign-in account with TestPassword.
func CreateTestAccount(t *testing.T, db *gorm.DB, role models.Role) *models.Account {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	n := nextID()
	account := &models.Account{
		Username: fmt.Sprintf("account%d", n),
		Email:    fmt.Sprintf("account%d@test.com", n),
		Password: string(hash),
		Role:     role,
		Enabled:  true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates an active category with the given name.
func CreateTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     name,
		Color:    "#4ECDC4",
		Icon:     "fas fa-tag",
		IsActive: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestUser creates a user record with a unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	user := &models.User{
		FirstName: "Test",
		LastName:  fmt.Sprintf("User%d", n),
		Email:     fmt.Sprintf("user%d@test.com", n),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates a cash expense owned by accountID. category may
// be nil.
func CreateTestExpense(t *testing.T, db *gorm.DB, accountID int64, category *models.Category, amount string, date models.Date) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Description:   fmt.Sprintf("Expense %d", nextID()),
		Amount:        decimal.RequireFromString(amount),
		ExpenseDate:   date,
		PaymentMethod: models.PaymentCash,
		AccountID:     accountID,
	}
	if category != nil {
		id := category.ID
		expense.CategoryID = &id
	}
	if err := db.Omit("Category").Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	expense.Category = category
	return expense
}
