package enrichment

import (
	"context"
	"errors"
	"io/fs"

	"github.com/sirupsen/logrus"

	"github.com/mmpl/league-api/models"
	"github.com/mmpl/league-api/storage"
	"github.com/mmpl/league-api/store"
)

// Cleanup reclaims storage when a venue image row is removed. A file that is
// already gone counts as cleaned up; any other storage failure aborts the row
// delete so the path is never orphaned silently.
type Cleanup struct {
	storage storage.Storage
	log     *logrus.Entry
}

func NewCleanup(st storage.Storage) *Cleanup {
	return &Cleanup{
		storage: st,
		log:     logrus.WithField("component", "enrichment"),
	}
}

// Listener returns the pre-delete hook to register with the content store.
func (c *Cleanup) Listener() store.ImageDeleteListener {
	return func(ctx context.Context, image *models.VenueImage) error {
		err := c.storage.Delete(ctx, image.Photo)
		if err == nil {
			return nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			c.log.WithField("photo", image.Photo).Debug("backing file already gone")
			return nil
		}
		return err
	}
}
