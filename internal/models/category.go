package models

// Category groups expenses. Clients only read categories.
type Category struct {
	Base
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}
