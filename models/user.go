package models

import (
	"time"
)

type AccountRole string

const (
	RoleClient    AccountRole = "CLIENT"
	RoleTherapist AccountRole = "THERAPIST"
	RoleAdmin     AccountRole = "ADMIN"
)

// DefaultAvatarURL is served whenever a user has not uploaded an avatar.
const DefaultAvatarURL = "https://res.cloudinary.com/psymatch/image/upload/defaults/avatar.png"

type User struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	PublicID         string            `json:"public_id" gorm:"type:uuid;uniqueIndex"`
	Email            string            `json:"email" gorm:"uniqueIndex"`
	Username         string            `json:"username"`
	Password         string            `json:"-"`
	Role             AccountRole       `json:"role" gorm:"type:varchar(16);index"`
	Profile          *UserProfile      `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	TherapistProfile *TherapistProfile `json:"therapist_profile,omitempty" gorm:"foreignKey:UserID"`
	ClientProfile    *ClientProfile    `json:"client_profile,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// IsTherapist and IsClient are derived from the single stored role; the
// role column is the only source of truth.
func (u *User) IsTherapist() bool {
	return u.Role == RoleTherapist
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
