package models

import "time"

// Base contains common columns for all tables. IDs are server-assigned
// auto-increment integers so collection order follows insertion order.
type Base struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// EntityID returns the record's identifier.
func (b Base) EntityID() int64 { return b.ID }
