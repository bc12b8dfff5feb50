package models

import (
	"time"

	"gorm.io/gorm"
)

// Member roles for the site's login-guarded members area.
const (
	RoleAdmin     = "admin"
	RoleCommittee = "committee"
	RoleMember    = "member"
)

// User is a members-area account. Most members never log in; accounts exist
// for committee members and whoever maintains the venue pages.
type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Username      string         `gorm:"unique;not null" json:"username"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Password      string         `gorm:"not null" json:"-"` // Don't expose password in JSON
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Role          string         `gorm:"default:'member'" json:"role"`
	GoogleID      string         `json:"-"`
	PlayerID      *uint          `json:"player_id"`
	Player        *Player        `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
