package enrichment

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mmpl/league-api/models"
	"github.com/mmpl/league-api/places"
	"github.com/mmpl/league-api/storage"
	"github.com/mmpl/league-api/store"
	"github.com/mmpl/league-api/types"
)

const photoDir = "gmaps_images"

// Enricher populates a venue page's details, open hours and photos from the
// places service. It runs synchronously on publish and treats every upstream
// gap as "skip that piece": a venue the service has never heard of simply
// stays unenriched.
type Enricher struct {
	db        *gorm.DB
	client    places.Client
	storage   storage.Storage
	maxPhotos int
	log       *logrus.Entry
}

func NewEnricher(db *gorm.DB, client places.Client, st storage.Storage, maxPhotos int) *Enricher {
	return &Enricher{
		db:        db,
		client:    client,
		storage:   st,
		maxPhotos: maxPhotos,
		log:       logrus.WithField("component", "enrichment"),
	}
}

// Listener adapts the enricher into a publish hook. Errors are logged and
// swallowed here so the publish itself can never fail on enrichment.
func (e *Enricher) Listener() store.PublishListener {
	return func(ctx context.Context, page *models.VenuePage) {
		if err := e.PopulateVenue(ctx, page); err != nil {
			e.log.WithError(err).WithField("page_id", page.ID).Warn("venue enrichment failed")
		}
	}
}

// PopulateVenue runs the pipeline for one page: search by title, fetch
// details for the first candidate, upsert the details row, store each
// well-formed weekly period, then download and record up to maxPhotos photos.
func (e *Enricher) PopulateVenue(ctx context.Context, page *models.VenuePage) error {
	log := e.log.WithFields(logrus.Fields{"page_id": page.ID, "title": page.Title})

	results, err := e.client.Search(ctx, page.Title)
	if err != nil {
		return fmt.Errorf("searching for %q: %w", page.Title, err)
	}
	if len(results) == 0 || results[0].PlaceID == "" {
		log.Debug("no place match, skipping enrichment")
		return nil
	}

	place, err := e.client.Details(ctx, results[0].PlaceID)
	if err != nil {
		return fmt.Errorf("fetching details for %q: %w", results[0].PlaceID, err)
	}
	if place == nil {
		log.WithField("place_id", results[0].PlaceID).Debug("no place details, skipping enrichment")
		return nil
	}

	details, err := store.UpsertVenueDetails(e.db, page.ID, detailsData(place))
	if err != nil {
		return err
	}

	e.storeOpenHours(log, details.ID, place)
	e.storePhotos(ctx, log, details.ID, place)

	log.WithField("place_id", place.PlaceID).Info("venue enriched")
	return nil
}

// detailsData maps the upstream fields onto the details DTO. Each field is
// applied through its own setter so an absent key skips only itself.
func detailsData(place *types.GooglePlaceDetails) store.VenueDetailsData {
	var data store.VenueDetailsData
	if place.PlaceID != "" {
		data.PlaceID = &place.PlaceID
	}

	fields := []struct {
		value *string
		set   func(*string)
	}{
		{place.FormattedAddress, func(v *string) { data.Address = v }},
		{place.FormattedPhoneNumber, func(v *string) { data.Phone = v }},
		{place.Website, func(v *string) { data.Website = v }},
		{place.URL, func(v *string) { data.GmapsURL = v }},
	}
	for _, field := range fields {
		if field.value != nil {
			field.set(field.value)
		}
	}
	return data
}

func (e *Enricher) storeOpenHours(log *logrus.Entry, detailsID uint, place *types.GooglePlaceDetails) {
	if place.OpeningHours == nil {
		return
	}
	for _, period := range place.OpeningHours.Periods {
		if period.Open == nil || period.Close == nil {
			log.Debug("skipping period with missing open or close")
			continue
		}
		_, err := store.CreateOpenHours(e.db, detailsID, store.OpenHoursData{
			OpenDay:   period.Open.Day,
			OpenTime:  period.Open.Time,
			CloseDay:  period.Close.Day,
			CloseTime: period.Close.Time,
		})
		if err != nil {
			log.WithError(err).Warn("storing open hours period failed")
		}
	}
}

func (e *Enricher) storePhotos(ctx context.Context, log *logrus.Entry, detailsID uint, place *types.GooglePlaceDetails) {
	for i, photo := range place.Photos {
		if i >= e.maxPhotos {
			break
		}

		name := fmt.Sprintf("%s/%s%d.jpeg", photoDir, place.PlaceID, i)
		if !e.storage.Exists(ctx, name) {
			data, err := e.client.Photo(ctx, photo.PhotoReference)
			if err != nil {
				log.WithError(err).WithField("photo", name).Warn("fetching photo failed")
				continue
			}
			if err := e.storage.Save(ctx, name, data); err != nil {
				log.WithError(err).WithField("photo", name).Warn("saving photo failed")
				continue
			}
		}

		if _, err := store.CreateVenueImage(e.db, detailsID, name); err != nil {
			log.WithError(err).WithField("photo", name).Warn("recording photo failed")
		}
	}
}
