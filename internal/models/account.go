package models

// Role is an account's authorization level.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Account is a sign-in principal of the collaborator.
type Account struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"size:16;not null;default:'USER'" json:"role"`
	Enabled  bool   `gorm:"default:true" json:"enabled"`
}
