package config

import (
	"os"
	"strconv"
	"time"
)

// Search is pinned to the league's service area: everything within 50 km of
// Melbourne. Venues outside that radius are not the league's problem.
const (
	defaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place"
	defaultSearchLat     = -37.813611
	defaultSearchLng     = 144.963056
	defaultSearchRadius  = 50000
	defaultPhotoMaxSize  = 2000
	defaultMaxPhotos     = 6
	defaultCacheTTL      = 10080 * time.Minute // one week
)

type PlacesConfig struct {
	APIKey         string
	BaseURL        string
	SearchLat      float64
	SearchLng      float64
	RadiusMeters   int
	PhotoMaxWidth  int
	PhotoMaxHeight int
	MaxPhotos      int
	CacheTTL       time.Duration
}

func NewPlacesConfig() *PlacesConfig {
	cfg := &PlacesConfig{
		APIKey:         os.Getenv("GOOGLE_MAPS_PLACE_KEY"),
		BaseURL:        defaultPlacesBaseURL,
		SearchLat:      defaultSearchLat,
		SearchLng:      defaultSearchLng,
		RadiusMeters:   defaultSearchRadius,
		PhotoMaxWidth:  defaultPhotoMaxSize,
		PhotoMaxHeight: defaultPhotoMaxSize,
		MaxPhotos:      defaultMaxPhotos,
		CacheTTL:       defaultCacheTTL,
	}

	if base := os.Getenv("GOOGLE_MAPS_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	if radius := os.Getenv("GOOGLE_MAPS_SEARCH_RADIUS"); radius != "" {
		if parsed, err := strconv.Atoi(radius); err == nil && parsed > 0 {
			cfg.RadiusMeters = parsed
		}
	}

	return cfg
}
