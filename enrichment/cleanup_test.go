package enrichment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmpl/league-api/enrichment"
	"github.com/mmpl/league-api/models"
	"github.com/mmpl/league-api/storage"
	"github.com/mmpl/league-api/store"
)

func TestCleanupDeletesBackingFile(t *testing.T) {
	db := setupDB(t)
	mediaStorage := storage.NewLocalStorage(t.TempDir())
	ctx := context.Background()

	name := "gmaps_images/ChIJduke0.jpeg"
	require.NoError(t, mediaStorage.Save(ctx, name, []byte{0xFF}))

	image := models.VenueImage{VenueDetailsID: 1, Photo: name}
	require.NoError(t, db.Create(&image).Error)

	contentStore := store.New(db)
	contentStore.OnVenueImageDelete(enrichment.NewCleanup(mediaStorage).Listener())

	require.NoError(t, contentStore.DeleteVenueImage(ctx, &image))

	assert.False(t, mediaStorage.Exists(ctx, name))
	var count int64
	db.Model(&models.VenueImage{}).Count(&count)
	assert.Zero(t, count)
}

func TestCleanupIgnoresMissingBackingFile(t *testing.T) {
	db := setupDB(t)
	mediaStorage := storage.NewLocalStorage(t.TempDir())
	ctx := context.Background()

	image := models.VenueImage{VenueDetailsID: 1, Photo: "gmaps_images/never-downloaded.jpeg"}
	require.NoError(t, db.Create(&image).Error)

	contentStore := store.New(db)
	contentStore.OnVenueImageDelete(enrichment.NewCleanup(mediaStorage).Listener())

	require.NoError(t, contentStore.DeleteVenueImage(ctx, &image))

	var count int64
	db.Model(&models.VenueImage{}).Count(&count)
	assert.Zero(t, count)
}

// brokenStorage fails every delete with a non-not-found error.
type brokenStorage struct {
	storage.Storage
}

func (brokenStorage) Delete(context.Context, string) error {
	return errors.New("permission denied")
}

func TestCleanupFailureAbortsRowDelete(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	image := models.VenueImage{VenueDetailsID: 1, Photo: "gmaps_images/ChIJduke0.jpeg"}
	require.NoError(t, db.Create(&image).Error)

	contentStore := store.New(db)
	contentStore.OnVenueImageDelete(enrichment.NewCleanup(brokenStorage{}).Listener())

	err := contentStore.DeleteVenueImage(ctx, &image)
	require.Error(t, err)

	// The row survives when its file could not be reclaimed.
	var count int64
	db.Model(&models.VenueImage{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
