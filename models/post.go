package models

import "time"

// Post is owned by its author. Likers and comments are embedded in the
// record as JSON columns, matching the document layout of the original
// store. AuthorID is a non-owning reference into users.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"index;not null" json:"author"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       string    `gorm:"size:512" json:"image,omitempty"`
	Likes       []uint    `gorm:"serializer:json;type:text" json:"likes"`
	Comments    []Comment `gorm:"serializer:json;type:text" json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
