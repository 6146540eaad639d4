package models

import "time"

// Session is the client-held record of who is signed in.
// IsAuthenticated is true iff Token, UserID and UserType are all set.
type Session struct {
	Token           string   `json:"token,omitempty"`
	UserID          string   `json:"user_id,omitempty"`
	UserType        UserType `json:"user_type,omitempty"`
	IsAuthenticated bool     `json:"is_authenticated"`
}

// SessionRecord is the durable copy of the current session. A single row keyed
// by a fixed ID survives process restarts.
type SessionRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"not null"`
	UserID    string `gorm:"not null"`
	UserType  string `gorm:"not null"`
	UpdatedAt time.Time
}

func (SessionRecord) TableName() string {
	return "sessions"
}
