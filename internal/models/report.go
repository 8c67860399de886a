package models

import "time"

// Report is an uploaded situation document. The file blob lives inline with
// the record; FileName/FileType stay empty when no file was attached.
// Data is never serialised in list responses, only streamed on download.
type Report struct {
	BaseModel
	Title       string    `json:"title"`
	Description string    `gorm:"size:1000" json:"description"`
	SubmittedBy string    `gorm:"index" json:"submitted_by"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`

	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	Data     []byte `gorm:"type:blob" json:"-"`
}
