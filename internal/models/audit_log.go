package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLog records a moderation or account action for the audit trail.
type AuditLog struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username   string    `gorm:"index" json:"username"`
	Action     string    `gorm:"not null;index" json:"action"`
	Resource   string    `gorm:"index" json:"resource"`
	ResourceID string    `json:"resource_id"`
	Result     string    `gorm:"not null" json:"result"`
	IPAddress  string    `json:"ip_address"`
	Metadata   string    `gorm:"type:json" json:"metadata"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
