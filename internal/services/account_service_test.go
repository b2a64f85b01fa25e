package services_test

import (
	"context"
	"testing"

	"bizdesk/internal/models"
	"bizdesk/internal/services"
	"bizdesk/internal/testutil"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	req := models.RegisterRequest{Username: "alice", Email: "Alice@Example.com", Password: "secret1"}

	t.Run("valid", func(t *testing.T) {
		svc := services.NewAccountService(testutil.SetupTestDB(t))

		account, err := svc.Register(ctx, req)
		testutil.AssertNoError(t, err)

		if account.ID == 0 {
			t.Fatal("expected non-zero account ID")
		}
		if account.Role != models.RoleUser {
			t.Errorf("expected role USER, got %s", account.Role)
		}
		if account.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", account.Email)
		}
		if account.Password == "secret1" {
			t.Error("password must be stored hashed")
		}
	})

	t.Run("duplicate_username", func(t *testing.T) {
		svc := services.NewAccountService(testutil.SetupTestDB(t))
		_, err := svc.Register(ctx, req)
		testutil.AssertNoError(t, err)

		dup := req
		dup.Email = "other@example.com"
		_, err = svc.Register(ctx, dup)
		testutil.AssertAppError(t, err, "DUPLICATE_USERNAME")
	})

	t.Run("duplicate_email", func(t *testing.T) {
		svc := services.NewAccountService(testutil.SetupTestDB(t))
		_, err := svc.Register(ctx, req)
		testutil.AssertNoError(t, err)

		dup := req
		dup.Username = "alice2"
		dup.Email = "ALICE@example.com"
		_, err = svc.Register(ctx, dup)
		testutil.AssertAppError(t, err, "DUPLICATE_ACCOUNT_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		svc := services.NewAccountService(testutil.SetupTestDB(t))
		_, err := svc.Register(ctx, models.RegisterRequest{Username: "bob"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := services.NewAccountService(db)
	account := testutil.CreateTestAccount(t, db, models.RoleUser)

	disabled := testutil.CreateTestAccount(t, db, models.RoleUser)
	if err := db.Model(disabled).Update("enabled", false).Error; err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"valid", account.Username, testutil.TestPassword, false},
		{"wrong_password", account.Username, "nope", true},
		{"unknown_user", "nobody", testutil.TestPassword, true},
		{"disabled", disabled.Username, testutil.TestPassword, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr {
				testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
				return
			}
			testutil.AssertNoError(t, err)
			if got.ID != account.ID {
				t.Errorf("expected account %d, got %d", account.ID, got.ID)
			}
		})
	}
}

func TestGetAccountByID(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := services.NewAccountService(db)
	account := testutil.CreateTestAccount(t, db, models.RoleAdmin)

	got, err := svc.GetByID(ctx, account.ID)
	testutil.AssertNoError(t, err)
	if got.Username != account.Username {
		t.Errorf("expected %s, got %s", account.Username, got.Username)
	}

	_, err = svc.GetByID(ctx, 9999)
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc := services.NewAccountService(testutil.SetupTestDB(t))

	first, err := svc.EnsureAdmin(ctx, "admin", "admin@example.com", "admin123")
	testutil.AssertNoError(t, err)
	if first.Role != models.RoleAdmin {
		t.Errorf("expected ADMIN, got %s", first.Role)
	}

	second, err := svc.EnsureAdmin(ctx, "admin", "admin@example.com", "admin123")
	testutil.AssertNoError(t, err)
	if second.ID != first.ID {
		t.Errorf("expected existing admin %d, got %d", first.ID, second.ID)
	}

	if _, err := svc.Authenticate(ctx, "admin", "admin123"); err != nil {
		t.Errorf("admin should be able to sign in: %v", err)
	}
}
