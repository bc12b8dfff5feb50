package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Umpire accreditation grades used on the registration form.
const (
	AccreditationAGrade = "A"
	AccreditationBGrade = "B"
	AccreditationCGrade = "C"
	AccreditationDGrade = "D"
	AccreditationNone   = "N"
)

type Player struct {
	ID                  uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	FirstName           string         `gorm:"not null" json:"first_name"`
	LastName            string         `gorm:"not null" json:"last_name"`
	DOB                 time.Time      `json:"dob"`
	Email               string         `gorm:"not null" json:"email"`
	Phone               string         `json:"phone"`
	Address             string         `json:"address"`
	Joined              time.Time      `json:"joined"`
	MediaRelease        bool           `gorm:"default:false" json:"media_release"`
	MediaReleaseDate    *time.Time     `json:"media_release_date"`
	VandaPolicy         bool           `gorm:"default:false" json:"vanda_policy"`
	VandaPolicyDate     *time.Time     `json:"vanda_policy_date"`
	UmpireAccreditation string         `gorm:"size:1;default:'N'" json:"umpire_accreditation"`
	Notification        *Notification  `json:"notification,omitempty" gorm:"foreignKey:PlayerID"`
}

func (p *Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// Notification tracks a player's opt-ins for the various mailing lists.
type Notification struct {
	PlayerID  uint `gorm:"primaryKey" json:"player_id"`
	Events    bool `gorm:"default:false" json:"events"`
	Results   bool `gorm:"default:false" json:"results"`
	Resources bool `gorm:"default:false" json:"resources"`
	News      bool `gorm:"default:false" json:"news"`
}
