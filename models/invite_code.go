package models

import (
	"time"
)

// InviteCode is a single-use token gating therapist self-registration.
// IsUsed flips false→true exactly once, inside the same transaction that
// creates the therapist account it authorizes.
type InviteCode struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Code      string     `json:"code" gorm:"uniqueIndex"`
	IsUsed    bool       `json:"is_used"`
	CreatedBy *uint      `json:"created_by,omitempty"`
	Creator   *User      `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`
	UsedBy    *uint      `json:"used_by,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Expired reports whether the code has an expiry in the past.
func (i *InviteCode) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && i.ExpiresAt.Before(now)
}
