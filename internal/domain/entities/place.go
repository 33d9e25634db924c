package entities

// Coordinates represents a point on the globe in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// RawPlace is a nearby-search candidate. Only PlaceID is used downstream.
type RawPlace struct {
	PlaceID  string
	Name     string
	Category string
}

// PlaceDetail holds the attributes returned by a place-details lookup.
// Optional attributes are nil when the provider omits them.
type PlaceDetail struct {
	PlaceID           string
	Name              string
	Address           *string
	Phone             *string
	Website           *string
	Location          *Coordinates
	OpeningHoursLines []string
}

// ResultItem is a ranked facility in the public response
type ResultItem struct {
	Name         string   `json:"name"`
	Address      *string  `json:"address"`
	Phone        *string  `json:"phone"`
	Website      *string  `json:"website"`
	OpeningHours []string `json:"opening_hours"`
	WalkMinutes  *int     `json:"walk_minutes"`
	MapsURL      *string  `json:"maps_url"`
}
