package models

import (
	"gorm.io/gorm"
)

type TherapistStatus string

const (
	TherapistPending TherapistStatus = "pending"
	TherapistActive  TherapistStatus = "active"
	TherapistPaused  TherapistStatus = "paused"
)

type TherapistProfile struct {
	gorm.Model
	UserID           uint             `json:"user_id" gorm:"uniqueIndex"`
	User             User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Bio              string           `json:"bio"`
	ExperienceYears  uint             `json:"experience_years"`
	Status           TherapistStatus  `json:"status" gorm:"type:varchar(16);default:'pending'"`
	IsVerified       bool             `json:"is_verified"`
	IsSubscribed     bool             `json:"is_subscribed"`
	TotalHoursWorked uint             `json:"-"`
	DisplayHours     bool             `json:"display_hours"`
	Skills           []Skill          `json:"skills,omitempty" gorm:"many2many:therapist_skills;"`
	Languages        []Language       `json:"languages,omitempty" gorm:"many2many:therapist_languages;"`
	Photos           []TherapistPhoto `json:"photos,omitempty" gorm:"foreignKey:TherapistProfileID"`
	Publications     []Publication    `json:"publications,omitempty" gorm:"foreignKey:TherapistProfileID"`
}

// Visible reports whether the profile qualifies for the public directory.
// Both gates are required.
func (t *TherapistProfile) Visible() bool {
	return t.IsVerified && t.IsSubscribed
}

// HoursWorked returns the worked-hours counter only when the therapist
// opted into displaying it. Redaction happens here, not in storage.
func (t *TherapistProfile) HoursWorked() *uint {
	if !t.DisplayHours {
		return nil
	}
	h := t.TotalHoursWorked
	return &h
}
