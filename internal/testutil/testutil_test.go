package testutil_test

import (
	"net/http"
	"testing"
	"time"

	"bizdesk/internal/errors"
	"bizdesk/internal/models"
	"bizdesk/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)

	var count int64
	for _, table := range []string{"accounts", "users", "categories", "expenses"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	second := testutil.SetupTestDB(t)

	testutil.CreateTestUser(t, first)

	var count int64
	if err := second.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("expected a fresh database, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)

	account := testutil.CreateTestAccount(t, db, models.RoleAdmin)
	if account.ID == 0 || account.Role != models.RoleAdmin {
		t.Fatalf("unexpected account %+v", account)
	}

	category := testutil.CreateTestCategory(t, db, "Travel")
	expense := testutil.CreateTestExpense(t, db, account.ID, category, "12.50", models.NewDate(2024, time.May, 1))
	if expense.CategoryID == nil || *expense.CategoryID != category.ID {
		t.Errorf("expected category %d, got %v", category.ID, expense.CategoryID)
	}

	var stored models.Expense
	if err := db.Preload("Category").First(&stored, expense.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Category == nil || stored.Category.Name != "Travel" {
		t.Errorf("expected Travel category, got %+v", stored.Category)
	}
	if stored.Amount.String() != "12.5" {
		t.Errorf("expected amount 12.5, got %s", stored.Amount)
	}
	if !stored.ExpenseDate.Equal(models.NewDate(2024, time.May, 1)) {
		t.Errorf("expected 2024-05-01, got %s", stored.ExpenseDate)
	}
}

func TestNewCollaborator(t *testing.T) {
	srv := testutil.NewCollaborator(t, testutil.SetupTestDB(t))

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrUserNotFound, "USER_NOT_FOUND")
	testutil.AssertNoError(t, nil)
}
