package models

import (
	"time"

	"gorm.io/gorm"
)

// VenuePage is the public content page for a venue. Its title doubles as the
// search key for the Google Places enrichment that runs on publish.
type VenuePage struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Title        string         `gorm:"not null" json:"title"`
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`
	Intro        string         `json:"intro"`
	Body         string         `gorm:"type:text" json:"body"`
	Live         bool           `gorm:"default:false" json:"live"`
	PublishedAt  *time.Time     `json:"published_at"`
	VenueDetails *VenueDetails  `json:"venue_details,omitempty" gorm:"foreignKey:VenuePageID"`
}
