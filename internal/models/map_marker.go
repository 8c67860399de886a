package models

import "time"

// Marker moderation states. Pending is the only initial state; approved and
// rejected are both terminal.
const (
	MarkerStatusPending  = "pending"
	MarkerStatusApproved = "approved"
	MarkerStatusRejected = "rejected"
)

// MapMarker is a geotagged report of a hazard, shelter, or supply point.
// Type-specific attributes (capacity, contact, depth, hours) are nullable
// and only populated for the marker types that use them.
type MapMarker struct {
	BaseModel
	Type        string  `gorm:"not null;index" json:"type"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Name        string  `json:"name"`
	Description string  `gorm:"size:1000" json:"description"`
	Severity    string  `json:"severity"`
	Status      string  `gorm:"not null;index;default:pending" json:"status"`
	SubmittedBy string  `gorm:"index" json:"submitted_by"`

	Capacity *int   `json:"capacity,omitempty"`
	Contact  string `json:"contact,omitempty"`
	Depth    string `json:"depth,omitempty"`
	Hours    string `json:"hours,omitempty"`

	Timestamp time.Time `gorm:"index" json:"timestamp"`
}
