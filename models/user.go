package models

import (
	"time"

	"gorm.io/gorm"
)

// User is stored document-style: the relationship lists live on the record
// itself as JSON columns rather than join tables, so a save overwrites the
// whole document the way the original store did. Entries in Posts point at
// post records; entries in Following/Followers are non-owning user ids.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Posts        []uint    `gorm:"serializer:json;type:text" json:"posts"`
	Following    []uint    `gorm:"serializer:json;type:text" json:"following"`
	Followers    []uint    `gorm:"serializer:json;type:text" json:"followers"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate ensures the UpdatedAt timestamp is refreshed.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
