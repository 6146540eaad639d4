package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification belongs to exactly one user. Type only drives display styling.
// Metadata is backend-defined and passed through opaque.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	UserType  UserType         `json:"user_type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	Link      string           `json:"link,omitempty"`
	Metadata  datatypes.JSON   `json:"metadata,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// UnreadCount is the envelope of GET /notifications/{userId}/unread.
type UnreadCount struct {
	UnreadCount int `json:"unread_count"`
}
