package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Venue is the club's own record of a venue it plays at: contact details plus
// the table count used by fixture generation. The public-facing content page
// for a venue lives in VenuePage.
type Venue struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Name        string         `gorm:"not null" json:"name"`
	Address     string         `json:"address"`
	Tables      int            `gorm:"default:0" json:"tables"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	ContactName string         `json:"contact_name"`
	Facilities  pq.StringArray `gorm:"type:text[]" json:"facilities"` // ["parking", "meals", "wheelchair_access"]
}
