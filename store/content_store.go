package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mmpl/league-api/models"
)

// PublishListener is invoked synchronously after a venue page goes live.
// Listeners absorb their own failures; a bad enrichment run must never undo
// or fail the publish.
type PublishListener func(ctx context.Context, page *models.VenuePage)

// ImageDeleteListener is invoked before a venue image row is removed. An
// error aborts the row delete.
type ImageDeleteListener func(ctx context.Context, image *models.VenueImage) error

// ContentStore wraps the database with the page lifecycle operations and the
// observer registration the enrichment pipeline and cleanup hook attach to.
type ContentStore struct {
	db                   *gorm.DB
	log                  *logrus.Entry
	publishListeners     []PublishListener
	imageDeleteListeners []ImageDeleteListener
}

func New(db *gorm.DB) *ContentStore {
	return &ContentStore{
		db:  db,
		log: logrus.WithField("component", "store"),
	}
}

func (s *ContentStore) DB() *gorm.DB {
	return s.db
}

// OnVenuePagePublished registers a listener for venue page publishes.
func (s *ContentStore) OnVenuePagePublished(fn PublishListener) {
	s.publishListeners = append(s.publishListeners, fn)
}

// OnVenueImageDelete registers a pre-delete hook for venue image rows.
func (s *ContentStore) OnVenueImageDelete(fn ImageDeleteListener) {
	s.imageDeleteListeners = append(s.imageDeleteListeners, fn)
}

// PublishVenuePage marks the page live and notifies publish listeners. The
// publish itself succeeds regardless of what the listeners make of it.
func (s *ContentStore) PublishVenuePage(ctx context.Context, id uint) (*models.VenuePage, error) {
	var page models.VenuePage
	if err := s.db.First(&page, id).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	page.Live = true
	page.PublishedAt = &now
	if err := s.db.Save(&page).Error; err != nil {
		return nil, fmt.Errorf("publishing venue page %d: %w", id, err)
	}

	for _, fn := range s.publishListeners {
		fn(ctx, &page)
	}

	return &page, nil
}

// UnpublishVenuePage takes the page offline. Enrichment data is left in place
// so a later re-publish starts warm.
func (s *ContentStore) UnpublishVenuePage(ctx context.Context, id uint) (*models.VenuePage, error) {
	var page models.VenuePage
	if err := s.db.First(&page, id).Error; err != nil {
		return nil, err
	}

	page.Live = false
	if err := s.db.Save(&page).Error; err != nil {
		return nil, fmt.Errorf("unpublishing venue page %d: %w", id, err)
	}

	return &page, nil
}

// DeleteVenueImage runs the pre-delete hooks and then removes the row. A hook
// error leaves the row in place.
func (s *ContentStore) DeleteVenueImage(ctx context.Context, image *models.VenueImage) error {
	for _, fn := range s.imageDeleteListeners {
		if err := fn(ctx, image); err != nil {
			return fmt.Errorf("pre-delete hook for image %d: %w", image.ID, err)
		}
	}
	return s.db.Delete(image).Error
}

// DeleteVenuePage removes the page and cascades through its enrichment rows:
// images first (via their pre-delete hooks), then open hours, details and the
// page itself.
func (s *ContentStore) DeleteVenuePage(ctx context.Context, id uint) error {
	var page models.VenuePage
	if err := s.db.First(&page, id).Error; err != nil {
		return err
	}

	var details models.VenueDetails
	err := s.db.Where("venue_page_id = ?", page.ID).First(&details).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	if err == nil {
		var images []models.VenueImage
		if err := s.db.Where("venue_details_id = ?", details.ID).Find(&images).Error; err != nil {
			return err
		}
		for i := range images {
			if err := s.DeleteVenueImage(ctx, &images[i]); err != nil {
				return err
			}
		}

		if err := s.db.Where("venue_details_id = ?", details.ID).Delete(&models.OpenHours{}).Error; err != nil {
			return err
		}
		if err := s.db.Delete(&details).Error; err != nil {
			return err
		}
	}

	return s.db.Delete(&page).Error
}
