package models

import "gorm.io/datatypes"

// HelpRequest is a citizen-submitted call for assistance. Needs keeps its
// submission order, so it is stored as a JSON array rather than a join table.
type HelpRequest struct {
	BaseModel
	Name    string                      `gorm:"not null" json:"name"`
	Phone   string                      `json:"phone"`
	Lat     float64                     `json:"lat"`
	Lng     float64                     `json:"lng"`
	Needs   datatypes.JSONSlice[string] `json:"needs"`
	Details string                      `gorm:"size:1000" json:"details"`
}
