package models

import "time"

// Alert is a broadcast advisory published by administrators.
type Alert struct {
	BaseModel
	Severity  string    `gorm:"index" json:"severity"`
	Title     string    `json:"title"`
	Content   string    `gorm:"size:1000" json:"content"`
	Source    string    `json:"source"`
	Icon      string    `json:"icon"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}
