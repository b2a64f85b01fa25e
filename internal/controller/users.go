package controller

import (
	"strings"
	"time"

	"bizdesk/internal/models"
	"bizdesk/internal/validator"
)

// UserStats summarizes the user collection.
type UserStats struct {
	Count        int
	Active       int
	NewThisMonth int
}

// ComputeUserStats aggregates all. Every user record counts as active, and
// creation times are read in now's location.
func ComputeUserStats(all []models.User, now time.Time) UserStats {
	stats := UserStats{Count: len(all), Active: len(all)}
	month := models.DateOf(now).MonthKey()
	for _, u := range all {
		if models.DateOf(u.CreatedAt.In(now.Location())).MonthKey() == month {
			stats.NewThisMonth++
		}
	}
	return stats
}

// MatchUser is the user filter. Text matches names and email ignoring case,
// and the phone number as a plain substring. Category and month criteria do
// not apply to users.
func MatchUser(u models.User, c Criteria) bool {
	if strings.TrimSpace(c.Text) == "" {
		return true
	}
	return containsFold(u.FirstName, c.Text) ||
		containsFold(u.LastName, c.Text) ||
		containsFold(u.Email, c.Text) ||
		(u.PhoneNumber != "" && strings.Contains(u.PhoneNumber, c.Text))
}

// UserController is the user list.
type UserController = ListController[models.User, models.UserDraft, UserStats]

// NewUserController wires a user list over the given client.
func NewUserController(users Backend[models.User, models.UserDraft], now func() time.Time) *UserController {
	return NewListController(Config[models.User, models.UserDraft, UserStats]{
		Noun:     "User",
		Backend:  users,
		Match:    MatchUser,
		Stats:    ComputeUserStats,
		Validate: func(d models.UserDraft) error { return validator.Struct(d) },
		Now:      now,
	})
}
