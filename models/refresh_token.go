package models

import (
	"time"

	"gorm.io/gorm"
)

type RefreshToken struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"not null"`
	User           User      `json:"-" gorm:"foreignKey:UserID"`
	Token          string    `json:"token" gorm:"uniqueIndex;not null"`
	ExpirationDate time.Time `json:"expiry" gorm:"not null"`
}
