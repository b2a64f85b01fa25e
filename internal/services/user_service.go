package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"
)

// userService handles managed user records.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// List returns every user in insertion order.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}

// Get retrieves a user by ID
func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// Create stores a new user. Emails are unique, compared case-insensitively.
func (s *userService) Create(ctx context.Context, d models.UserDraft) (*models.User, error) {
	user := &models.User{}
	apply(user, d)

	if err := s.checkEmail(ctx, user.Email, 0); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// Update replaces every editable field of a user.
func (s *userService) Update(ctx context.Context, id int64, d models.UserDraft) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(user, d)

	if err := s.checkEmail(ctx, user.Email, id); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// Delete removes a user.
func (s *userService) Delete(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (s *userService) checkEmail(ctx context.Context, email string, exceptID int64) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&count).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateEmail
	}
	return nil
}

func apply(u *models.User, d models.UserDraft) {
	u.FirstName = strings.TrimSpace(d.FirstName)
	u.LastName = strings.TrimSpace(d.LastName)
	u.Email = strings.ToLower(strings.TrimSpace(d.Email))
	u.PhoneNumber = strings.TrimSpace(d.PhoneNumber)
}
