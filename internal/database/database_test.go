package database_test

import (
	"context"
	"testing"

	"bizdesk/internal/database"
	"bizdesk/internal/models"
	"bizdesk/internal/testutil"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)

	for i := 0; i < 2; i++ {
		testutil.AssertNoError(t, database.SeedCategories(ctx, db))
		testutil.AssertNoError(t, database.SeedUsers(ctx, db))
	}

	var categories, users int64
	db.Model(&models.Category{}).Count(&categories)
	db.Model(&models.User{}).Count(&users)
	if categories != int64(len(database.DefaultCategories)) {
		t.Errorf("expected %d categories, got %d", len(database.DefaultCategories), categories)
	}
	if users != int64(len(database.SampleUsers)) {
		t.Errorf("expected %d users, got %d", len(database.SampleUsers), users)
	}

	var food models.Category
	if err := db.Where("name = ?", "Food & Dining").First(&food).Error; err != nil {
		t.Fatal(err)
	}
	if food.Color != "#FF6B6B" || food.Icon != "fas fa-utensils" || !food.IsActive {
		t.Errorf("unexpected seeded category %+v", food)
	}
}

func TestSeedKeepsExistingRows(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	testutil.CreateTestCategory(t, db, "Custom")

	testutil.AssertNoError(t, database.SeedCategories(ctx, db))

	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count != 1 {
		t.Errorf("expected seeding to skip a populated table, got %d rows", count)
	}
}

func TestManagerSQLiteInMemory(t *testing.T) {
	m, err := database.NewManager(database.Config{Driver: database.DriverSQLite, Path: ":memory:"})
	testutil.AssertNoError(t, err)
	defer m.Close()

	testutil.AssertNoError(t, m.Migrate())
	for _, table := range []string{"accounts", "users", "categories", "expenses"} {
		if !m.DB().Migrator().HasTable(table) {
			t.Errorf("expected table %s", table)
		}
	}
}

func TestManagerRejectsUnknownDriver(t *testing.T) {
	if _, err := database.NewManager(database.Config{Driver: "oracle"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
