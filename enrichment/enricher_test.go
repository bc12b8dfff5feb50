package enrichment_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mmpl/league-api/enrichment"
	"github.com/mmpl/league-api/models"
	"github.com/mmpl/league-api/storage"
	"github.com/mmpl/league-api/types"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.VenuePage{},
		&models.VenueDetails{},
		&models.OpenHours{},
		&models.VenueImage{},
	))
	return db
}

func createPage(t *testing.T, db *gorm.DB, title string) *models.VenuePage {
	t.Helper()

	page := &models.VenuePage{Title: title, Slug: title}
	require.NoError(t, db.Create(page).Error)
	return page
}

// fakePlaces scripts the lookup client.
type fakePlaces struct {
	results    []types.GooglePlaceResult
	details    *types.GooglePlaceDetails
	photo      []byte
	photoErr   error
	photoCalls int
}

func (f *fakePlaces) Search(context.Context, string) ([]types.GooglePlaceResult, error) {
	return f.results, nil
}

func (f *fakePlaces) Details(context.Context, string) (*types.GooglePlaceDetails, error) {
	return f.details, nil
}

func (f *fakePlaces) Photo(context.Context, string) ([]byte, error) {
	f.photoCalls++
	if f.photoErr != nil {
		return nil, f.photoErr
	}
	return f.photo, nil
}

func str(s string) *string { return &s }

func fullDetails() *types.GooglePlaceDetails {
	return &types.GooglePlaceDetails{
		PlaceID:              "ChIJduke",
		Name:                 "The Duke of Kent",
		FormattedAddress:     str("293 La Trobe St, Melbourne VIC 3000"),
		FormattedPhoneNumber: str("(03) 9600 9074"),
		Website:              str("http://dukeofkent.com.au"),
		URL:                  str("https://maps.google.com/?cid=123"),
		OpeningHours: &types.OpeningHours{
			Periods: []types.Period{
				{
					Open:  &types.DayTime{Day: 1, Time: "1100"},
					Close: &types.DayTime{Day: 1, Time: "2300"},
				},
				{
					Open:  &types.DayTime{Day: 2, Time: "1100"},
					Close: &types.DayTime{Day: 2, Time: "2300"},
				},
			},
		},
		Photos: []types.Photo{
			{PhotoReference: "ref-0"},
			{PhotoReference: "ref-1"},
		},
	}
}

func matchedSearch() []types.GooglePlaceResult {
	return []types.GooglePlaceResult{{PlaceID: "ChIJduke", Name: "The Duke of Kent"}}
}

func TestNoSearchMatchCreatesNothing(t *testing.T) {
	db := setupDB(t)
	page := createPage(t, db, "The Phantom Arms")

	enricher := enrichment.NewEnricher(db, &fakePlaces{}, storage.NewLocalStorage(t.TempDir()), 6)
	require.NoError(t, enricher.PopulateVenue(context.Background(), page))

	var detailsCount, hoursCount, imagesCount int64
	db.Model(&models.VenueDetails{}).Count(&detailsCount)
	db.Model(&models.OpenHours{}).Count(&hoursCount)
	db.Model(&models.VenueImage{}).Count(&imagesCount)
	assert.Zero(t, detailsCount)
	assert.Zero(t, hoursCount)
	assert.Zero(t, imagesCount)
}

func TestDetailsUnavailableCreatesNothing(t *testing.T) {
	db := setupDB(t)
	page := createPage(t, db, "The Duke of Kent")

	client := &fakePlaces{results: matchedSearch(), details: nil}
	enricher := enrichment.NewEnricher(db, client, storage.NewLocalStorage(t.TempDir()), 6)
	require.NoError(t, enricher.PopulateVenue(context.Background(), page))

	var detailsCount int64
	db.Model(&models.VenueDetails{}).Count(&detailsCount)
	assert.Zero(t, detailsCount)
}

func TestMissingWebsiteLeavesFieldEmpty(t *testing.T) {
	db := setupDB(t)
	page := createPage(t, db, "The Duke of Kent")

	details := fullDetails()
	details.Website = nil
	client := &fakePlaces{results: matchedSearch(), details: details, photo: []byte{0xFF}}

	enricher := enrichment.NewEnricher(db, client, storage.NewLocalStorage(t.TempDir()), 6)
	require.NoError(t, enricher.PopulateVenue(context.Background(), page))

	var stored models.VenueDetails
	require.NoError(t, db.Where("venue_page_id = ?", page.ID).First(&stored).Error)
	assert.Equal(t, "ChIJduke", stored.PlaceID)
	assert.Equal(t, "293 La Trobe St, Melbourne VIC 3000", stored.Address)
	assert.Equal(t, "(03) 9600 9074", stored.Phone)
	assert.Equal(t, "https://maps.google.com/?cid=123", stored.GmapsURL)
	assert.Empty(t, stored.Website)
}

func TestRerunWithUnchangedResponseIsIdempotent(t *testing.T) {
	db := setupDB(t)
	page := createPage(t, db, "The Duke of Kent")
	mediaRoot := t.TempDir()

	client := &fakePlaces{results: matchedSearch(), details: fullDetails(), photo: []byte{0xFF, 0xD8}}
	enricher := enrichment.NewEnricher(db, client, storage.NewLocalStorage(mediaRoot), 6)

	require.NoError(t, enricher.PopulateVenue(context.Background(), page))
	firstDownloads := client.photoCalls
	require.NoError(t, enricher.PopulateVenue(context.Background(), page))

	var detailsCount, hoursCount, imagesCount int64
	db.Model(&models.VenueDetails{}).Count(&detailsCount)
	db.Model(&models.OpenHours{}).Count(&hoursCount)
	db.Model(&models.VenueImage{}).Count(&imagesCount)

	assert.EqualValues(t, 1, detailsCount)
	assert.EqualValues(t, 2, hoursCount)
	assert.EqualValues(t, 2, imagesCount)

	// Files already on disk are reused, not re-downloaded.
	assert.Equal(t, firstDownloads, client.photoCalls)
}

func TestPhotoCountIsCapped(t *testing.T) {
	db := setupDB(t)
	page := createPage(t, db, "The Duke of Kent")

	details := fullDetails()
	details.Photos = nil
	for i := 0; i < 8; i++ {
		details.Photos = append(details.Photos, types.Photo{PhotoReference: "ref"})
	}
	client := &fakePlaces{results: matchedSearch(), details: details, photo: []byte{0xFF}}

	enricher := enrichment.NewEnricher(db, client, storage.NewLocalStorage(t.TempDir()), 6)
	require.NoError(t, enricher.PopulateVenue(context.Background(), page))

	var imagesCount int64
	db.Model(&models.VenueImage{}).Count(&imagesCount)
	assert.EqualValues(t, 6, imagesCount)
}

func TestMalformedPeriodIsSkipped(t *testing.T) {
	db := setupDB(t)
	page := createPage(t, db, "The Duke of Kent")

	details := fullDetails()
	details.OpeningHours.Periods = []types.Period{
		{
			Open:  &types.DayTime{Day: 1, Time: "1100"},
			Close: &types.DayTime{Day: 1, Time: "2300"},
		},
		{
			// 24/7 venues come back open-only; no close means skip.
			Open: &types.DayTime{Day: 0, Time: "0000"},
		},
	}
	client := &fakePlaces{results: matchedSearch(), details: details, photo: []byte{0xFF}}

	enricher := enrichment.NewEnricher(db, client, storage.NewLocalStorage(t.TempDir()), 6)
	require.NoError(t, enricher.PopulateVenue(context.Background(), page))

	var hours []models.OpenHours
	require.NoError(t, db.Find(&hours).Error)
	require.Len(t, hours, 1)
	assert.Equal(t, 1, hours[0].OpenDay)
	assert.Equal(t, "1100", hours[0].OpenTime)
	assert.Equal(t, "2300", hours[0].CloseTime)
}

func TestPhotoFetchFailureSkipsOnlyPhotos(t *testing.T) {
	db := setupDB(t)
	page := createPage(t, db, "The Duke of Kent")

	client := &fakePlaces{
		results:  matchedSearch(),
		details:  fullDetails(),
		photoErr: assert.AnError,
	}

	enricher := enrichment.NewEnricher(db, client, storage.NewLocalStorage(t.TempDir()), 6)
	require.NoError(t, enricher.PopulateVenue(context.Background(), page))

	var detailsCount, hoursCount, imagesCount int64
	db.Model(&models.VenueDetails{}).Count(&detailsCount)
	db.Model(&models.OpenHours{}).Count(&hoursCount)
	db.Model(&models.VenueImage{}).Count(&imagesCount)
	assert.EqualValues(t, 1, detailsCount)
	assert.EqualValues(t, 2, hoursCount)
	assert.Zero(t, imagesCount)
}

func TestPhotoFilenamesAreDeterministic(t *testing.T) {
	db := setupDB(t)
	page := createPage(t, db, "The Duke of Kent")

	client := &fakePlaces{results: matchedSearch(), details: fullDetails(), photo: []byte{0xFF}}
	enricher := enrichment.NewEnricher(db, client, storage.NewLocalStorage(t.TempDir()), 6)
	require.NoError(t, enricher.PopulateVenue(context.Background(), page))

	var images []models.VenueImage
	require.NoError(t, db.Order("photo").Find(&images).Error)
	require.Len(t, images, 2)
	assert.Equal(t, "gmaps_images/ChIJduke0.jpeg", images[0].Photo)
	assert.Equal(t, "gmaps_images/ChIJduke1.jpeg", images[1].Photo)
}
