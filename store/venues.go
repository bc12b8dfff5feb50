package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mmpl/league-api/models"
)

// VenueDetailsData carries the fields the enrichment pipeline wants to write.
// Nil pointers mean "the upstream response had no such field" and leave the
// stored value untouched.
type VenueDetailsData struct {
	PlaceID  *string
	Address  *string
	Phone    *string
	Website  *string
	GmapsURL *string
}

// OpenHoursData is one weekly open/close period ready for persistence.
type OpenHoursData struct {
	OpenDay   int
	OpenTime  string
	CloseDay  int
	CloseTime string
}

// UpsertVenueDetails creates or refreshes the details row for a venue page.
// Each field is applied independently, so a response missing, say, the
// website still updates everything else.
func UpsertVenueDetails(db *gorm.DB, pageID uint, data VenueDetailsData) (*models.VenueDetails, error) {
	var details models.VenueDetails
	if err := db.Where(models.VenueDetails{VenuePageID: pageID}).
		FirstOrCreate(&details).Error; err != nil {
		return nil, fmt.Errorf("upserting venue details for page %d: %w", pageID, err)
	}

	assign(&details.PlaceID, data.PlaceID)
	assign(&details.Address, data.Address)
	assign(&details.Phone, data.Phone)
	assign(&details.Website, data.Website)
	assign(&details.GmapsURL, data.GmapsURL)

	if err := db.Save(&details).Error; err != nil {
		return nil, fmt.Errorf("saving venue details for page %d: %w", pageID, err)
	}
	return &details, nil
}

// CreateOpenHours stores one weekly period, keyed by its day/time fields so a
// re-run with an unchanged response lands on the existing row. Returns true
// when a new row was created.
func CreateOpenHours(db *gorm.DB, detailsID uint, data OpenHoursData) (bool, error) {
	row := models.OpenHours{
		VenueDetailsID: detailsID,
		PeriodKey:      models.PeriodKeyFor(data.OpenDay, data.OpenTime, data.CloseDay, data.CloseTime),
		OpenDay:        data.OpenDay,
		OpenTime:       data.OpenTime,
		CloseDay:       data.CloseDay,
		CloseTime:      data.CloseTime,
	}

	result := db.Where(models.OpenHours{
		VenueDetailsID: row.VenueDetailsID,
		PeriodKey:      row.PeriodKey,
	}).FirstOrCreate(&row)
	if result.Error != nil {
		return false, fmt.Errorf("creating open hours for details %d: %w", detailsID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// CreateVenueImage records a stored photo path. Paths are unique per details
// row, so repeated enrichment runs reuse the existing row.
func CreateVenueImage(db *gorm.DB, detailsID uint, photoPath string) (bool, error) {
	row := models.VenueImage{
		VenueDetailsID: detailsID,
		Photo:          photoPath,
	}

	result := db.Where(models.VenueImage{
		VenueDetailsID: detailsID,
		Photo:          photoPath,
	}).FirstOrCreate(&row)
	if result.Error != nil {
		return false, fmt.Errorf("creating venue image for details %d: %w", detailsID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
