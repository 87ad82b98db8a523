package models

import (
	"gorm.io/gorm"
)

// TherapistPhoto is one image in a therapist's public gallery. Position
// drives display order, lowest first.
type TherapistPhoto struct {
	gorm.Model
	TherapistProfileID uint   `json:"therapist_profile_id" gorm:"index"`
	URL                string `json:"url"`
	Caption            string `json:"caption"`
	Position           int    `json:"position"`
}
