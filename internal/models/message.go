package models

import "time"

// Message is a single chat message between two usernames. IsRead flips to
// true only through conversation read-marking.
type Message struct {
	BaseModel
	Sender    string    `gorm:"not null;index" json:"sender"`
	Recipient string    `gorm:"not null;index:idx_messages_recipient_read" json:"recipient"`
	Content   string    `gorm:"size:2000" json:"content"`
	Role      string    `json:"role"`
	IsRead    bool      `gorm:"not null;default:false;index:idx_messages_recipient_read" json:"is_read"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}
