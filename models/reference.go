package models

import (
	"time"
)

// Skill doubles as the therapist specialty vocabulary and the client
// interest-tag vocabulary.
type Skill struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

type Language struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex"`
	Code      string    `json:"code" gorm:"size:8"`
	CreatedAt time.Time `json:"created_at"`
}
