package models

import (
	"gorm.io/gorm"
)

type Publication struct {
	gorm.Model
	TherapistProfileID uint   `json:"therapist_profile_id" gorm:"index"`
	Title              string `json:"title"`
	Body               string `json:"body"`
}
