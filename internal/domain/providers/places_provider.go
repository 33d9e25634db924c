package providers

import (
	"context"

	"github.com/zatekoja/nearbycare/internal/domain/entities"
)

// PlacesProvider defines the interface for the external places-search service
type PlacesProvider interface {
	// NearbySearch returns candidates of one category around a center point
	NearbySearch(ctx context.Context, req NearbySearchRequest) ([]entities.RawPlace, error)

	// PlaceDetails returns extended attributes for one place.
	// A nil detail with a nil error means the provider had nothing for the id.
	PlaceDetails(ctx context.Context, req PlaceDetailsRequest) (*entities.PlaceDetail, error)
}

// NearbySearchRequest describes a single category search
type NearbySearchRequest struct {
	Center       entities.Coordinates
	RadiusMeters int
	Category     string
	Language     string
}

// PlaceDetailsRequest describes a single place-details lookup
type PlaceDetailsRequest struct {
	PlaceID  string
	Fields   []string
	Language string
}
