package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// VenueDetails holds the Google Places data for a venue page. One row per
// page, created or refreshed by the enrichment pipeline on publish; absence
// means enrichment never ran or found no match.
type VenueDetails struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	VenuePageID uint           `gorm:"uniqueIndex;not null" json:"venue_page_id"`
	PlaceID     string         `gorm:"size:255" json:"place_id"`
	Address     string         `gorm:"size:100" json:"address"`
	Phone       string         `gorm:"size:30" json:"phone"`
	Website     string         `gorm:"size:100" json:"website"`
	GmapsURL    string         `gorm:"size:100" json:"gmaps_url"`
	OpenHours   []OpenHours    `json:"open_hours,omitempty" gorm:"foreignKey:VenueDetailsID"`
	Photos      []VenueImage   `json:"photos,omitempty" gorm:"foreignKey:VenueDetailsID"`
}

// OpenHours is one weekly open/close period for a venue, as reported by the
// places service. Days are 0 (Sunday) through 6 (Saturday), times are "HHMM".
type OpenHours struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	VenueDetailsID uint   `gorm:"not null;uniqueIndex:idx_venue_period" json:"venue_details_id"`
	PeriodKey      string `gorm:"size:32;not null;uniqueIndex:idx_venue_period" json:"-"`
	OpenDay        int    `json:"open_day"`
	OpenTime       string `gorm:"size:10" json:"open_time"`
	CloseDay       int    `json:"close_day"`
	CloseTime      string `gorm:"size:10" json:"close_time"`
}

// PeriodKeyFor derives the dedup key for a weekly period purely from its
// day/time fields, so re-running enrichment with an unchanged response maps
// onto the same rows.
func PeriodKeyFor(openDay int, openTime string, closeDay int, closeTime string) string {
	return fmt.Sprintf("%d-%s-%d-%s", openDay, openTime, closeDay, closeTime)
}

// VenueImage points at a photo downloaded from the places service, stored
// relative to the media root. The backing file is removed by the cleanup
// hook when the row is deleted.
type VenueImage struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	VenueDetailsID uint      `gorm:"not null;uniqueIndex:idx_venue_photo" json:"venue_details_id"`
	Photo          string    `gorm:"size:300;not null;uniqueIndex:idx_venue_photo" json:"photo"`
}
