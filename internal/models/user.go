package models

// User is a managed person record. It is unrelated to the Account used to
// sign in.
type User struct {
	Base
	FirstName   string `gorm:"not null" json:"firstName"`
	LastName    string `gorm:"not null" json:"lastName"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// FullName returns "First Last".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserDraft is the create/update body for a User.
type UserDraft struct {
	FirstName   string `json:"firstName" binding:"required,min=1,max=100"`
	LastName    string `json:"lastName" binding:"required,min=1,max=100"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber,omitempty" binding:"omitempty,max=20"`
}

// Draft returns the body that would recreate u.
func (u User) Draft() UserDraft {
	return UserDraft{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}
