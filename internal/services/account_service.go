package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"
)

// accountService handles sign-in accounts.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// Register creates a USER account. Username and email must both be unused.
func (s *accountService) Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" || req.Password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username, email and password are required")
	}
	return s.create(ctx, username, email, req.Password, models.RoleUser)
}

func (s *accountService) create(ctx context.Context, username, email, password string, role models.Role) (*models.Account, error) {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Account{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateUsername
	}
	if err := db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateAccountEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	account := &models.Account{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Enabled:  true,
	}
	if err := db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// Authenticate checks credentials. Unknown usernames, wrong passwords and
// disabled accounts all return ErrInvalidCredentials.
func (s *accountService) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !account.Enabled {
		return nil, apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &account, nil
}

// GetByID retrieves an account by ID.
func (s *accountService) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// EnsureAdmin creates the ADMIN account unless an account with that
// username already exists, in which case the existing one is returned.
func (s *accountService) EnsureAdmin(ctx context.Context, username, email, password string) (*models.Account, error) {
	var existing models.Account
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.create(ctx, username, strings.ToLower(email), password, models.RoleAdmin)
}
