package models

import (
	"gorm.io/gorm"
)

type ClientProfile struct {
	gorm.Model
	UserID      uint    `json:"user_id" gorm:"uniqueIndex"`
	User        User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RequestText string  `json:"request_text"`
	Interests   []Skill `json:"interests,omitempty" gorm:"many2many:client_interests;"`
}
