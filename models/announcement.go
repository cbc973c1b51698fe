package models

import "time"

// Announcement is a workplace bulletin entry.
type Announcement struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Body        string    `json:"body" bson:"body"`
	AuthorEmail string    `json:"authorEmail,omitempty" bson:"author_email,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}
