package database

import (
	"context"
	"fmt"

	"bizdesk/internal/logger"
	"bizdesk/internal/models"

	"gorm.io/gorm"
)

// DefaultCategories is the category catalogue installed into an empty
// database.
var DefaultCategories = []models.Category{
	{Name: "Food & Dining", Description: "Restaurants, groceries, and food delivery", Color: "#FF6B6B", Icon: "fas fa-utensils", IsActive: true},
	{Name: "Transportation", Description: "Gas, public transport, rideshare, parking", Color: "#4ECDC4", Icon: "fas fa-car", IsActive: true},
	{Name: "Shopping", Description: "Clothing, electronics, and general shopping", Color: "#45B7D1", Icon: "fas fa-shopping-bag", IsActive: true},
	{Name: "Entertainment", Description: "Movies, games, subscriptions, and fun activities", Color: "#96CEB4", Icon: "fas fa-gamepad", IsActive: true},
	{Name: "Utilities", Description: "Electricity, water, internet, phone bills", Color: "#FFEAA7", Icon: "fas fa-bolt", IsActive: true},
	{Name: "Healthcare", Description: "Medical expenses, pharmacy, insurance", Color: "#DDA0DD", Icon: "fas fa-heartbeat", IsActive: true},
	{Name: "Education", Description: "Books, courses, tuition, and learning materials", Color: "#98D8C8", Icon: "fas fa-graduation-cap", IsActive: true},
	{Name: "Travel", Description: "Flights, hotels, vacation expenses", Color: "#F7DC6F", Icon: "fas fa-plane", IsActive: true},
	{Name: "Other", Description: "Miscellaneous expenses", Color: "#BDC3C7", Icon: "fas fa-question-circle", IsActive: true},
}

// SampleUsers are the demo user records installed by SEED_DATA.
var SampleUsers = []models.User{
	{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", PhoneNumber: "1234567890"},
	{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", PhoneNumber: "0987654321"},
	{FirstName: "Bob", LastName: "Johnson", Email: "bob.johnson@example.com", PhoneNumber: "5555555555"},
	{FirstName: "Alice", LastName: "Brown", Email: "alice.brown@example.com", PhoneNumber: "1111111111"},
	{FirstName: "Charlie", LastName: "Wilson", Email: "charlie.wilson@example.com", PhoneNumber: "2222222222"},
}

// SeedCategories installs DefaultCategories when the table is empty.
func SeedCategories(ctx context.Context, db *gorm.DB) error {
	return seedIfEmpty(ctx, db, &models.Category{}, func(tx *gorm.DB) error {
		rows := append([]models.Category(nil), DefaultCategories...)
		return tx.Create(&rows).Error
	})
}

// SeedUsers installs SampleUsers when the table is empty.
func SeedUsers(ctx context.Context, db *gorm.DB) error {
	return seedIfEmpty(ctx, db, &models.User{}, func(tx *gorm.DB) error {
		rows := append([]models.User(nil), SampleUsers...)
		return tx.Create(&rows).Error
	})
}

func seedIfEmpty(ctx context.Context, db *gorm.DB, model any, insert func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(model).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := insert(tx); err != nil {
			return fmt.Errorf("seed %T: %w", model, err)
		}
		logger.Get().Infow("Seeded table", "model", fmt.Sprintf("%T", model))
		return nil
	})
}
