package types

// Response shapes for the Google Places Web Service endpoints used by the
// enrichment pipeline. Optional fields are pointers so an absent key can be
// told apart from an empty value.

type GooglePlacesSearchResponse struct {
	HTMLAttributions []string            `json:"html_attributions"`
	NextPageToken    string              `json:"next_page_token"`
	Results          []GooglePlaceResult `json:"results"`
	Status           string              `json:"status"`
}

type GooglePlaceResult struct {
	BusinessStatus   *string   `json:"business_status,omitempty"`
	FormattedAddress *string   `json:"formatted_address,omitempty"`
	Geometry         *Geometry `json:"geometry,omitempty"`
	Name             string    `json:"name"`
	PlaceID          string    `json:"place_id"`
	Rating           *float64  `json:"rating,omitempty"`
	Reference        string    `json:"reference"`
	Types            []string  `json:"types"`
}

type GooglePlaceDetailsResponse struct {
	HTMLAttributions []string            `json:"html_attributions"`
	Result           *GooglePlaceDetails `json:"result"`
	Status           string              `json:"status"`
}

type GooglePlaceDetails struct {
	PlaceID              string        `json:"place_id"`
	Name                 string        `json:"name"`
	FormattedAddress     *string       `json:"formatted_address,omitempty"`
	FormattedPhoneNumber *string       `json:"formatted_phone_number,omitempty"`
	Website              *string       `json:"website,omitempty"`
	URL                  *string       `json:"url,omitempty"`
	Geometry             *Geometry     `json:"geometry,omitempty"`
	OpeningHours         *OpeningHours `json:"opening_hours,omitempty"`
	Photos               []Photo       `json:"photos,omitempty"`
}

type Geometry struct {
	Location Location `json:"location"`
	Viewport Viewport `json:"viewport"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Viewport struct {
	Northeast Location `json:"northeast"`
	Southwest Location `json:"southwest"`
}

type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	Periods     []Period `json:"periods,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// Period is one weekly open/close span. Always-open places come back with an
// open entry and no close; the pipeline skips those.
type Period struct {
	Open  *DayTime `json:"open,omitempty"`
	Close *DayTime `json:"close,omitempty"`
}

type DayTime struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

type Photo struct {
	Height           int      `json:"height"`
	HTMLAttributions []string `json:"html_attributions"`
	PhotoReference   string   `json:"photo_reference"`
	Width            int      `json:"width"`
}
