package models

import (
	"time"
)

type Gender string

const (
	GenderFemale      Gender = "female"
	GenderMale        Gender = "male"
	GenderUnspecified Gender = ""
)

// UserProfile holds the base identity fields shared by every account,
// regardless of role. Exactly one exists per user.
type UserProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Gender    Gender    `json:"gender" gorm:"type:varchar(16)"`
	AvatarURL string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Avatar returns the stored avatar URL or the static default when none
// has been uploaded.
func (p *UserProfile) Avatar() string {
	if p.AvatarURL == "" {
		return DefaultAvatarURL
	}
	return p.AvatarURL
}
