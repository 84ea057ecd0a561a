package models

import "time"

// Comment lives embedded inside a Post's comment list. It is created only by
// appending to that list and never mutated or deleted afterwards; its ID is
// assigned when it is embedded.
type Comment struct {
	ID        string    `json:"id"`
	AuthorID  uint      `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
