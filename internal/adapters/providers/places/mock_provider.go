package places

import (
	"context"
	"strconv"
	"strings"

	"github.com/zatekoja/nearbycare/internal/domain/entities"
	"github.com/zatekoja/nearbycare/internal/domain/providers"
)

// MockPlacesProvider serves fixture places around the requested center for
// local development without a Google quota. The search center is carried in
// the returned place ids so details can be located without shared state.
type MockPlacesProvider struct{}

type mockPlace struct {
	id       string
	category string
	dLat     float64
	dLng     float64
	detail   entities.PlaceDetail
}

var mockPlaces = []mockPlace{
	{
		id: "mock-hospital-1", category: "hospital", dLat: 0.004, dLng: 0.002,
		detail: entities.PlaceDetail{
			Name:    "Mock General Hospital",
			Address: strPtr("1-1 Mock Street"),
			Phone:   strPtr("03-0000-0001"),
			Website: strPtr("https://hospital.example.com"),
			OpeningHoursLines: []string{
				"Monday: 9:00 AM – 5:00 PM",
				"Tuesday: 9:00 AM – 5:00 PM",
				"Wednesday: 9:00 AM – 5:00 PM",
				"Thursday: 9:00 AM – 5:00 PM",
				"Friday: 9:00 AM – 5:00 PM",
				"Saturday: 9:00 AM – 12:00 PM",
				"Sunday: Closed",
			},
		},
	},
	{
		// listed by Google under both categories
		id: "mock-hospital-2", category: "hospital,doctor", dLat: -0.002, dLng: 0.001,
		detail: entities.PlaceDetail{
			Name:    "Mock Family Clinic",
			Address: strPtr("2-3 Mock Avenue"),
			Phone:   strPtr("03-0000-0002"),
		},
	},
	{
		id: "mock-doctor-3", category: "doctor", dLat: 0.008, dLng: -0.006,
		detail: entities.PlaceDetail{
			Name: "Mock Night Clinic",
			OpeningHoursLines: []string{
				"Monday: Closed",
				"Tuesday: 6:00 PM – 11:00 PM",
				"Wednesday: 6:00 PM – 11:00 PM",
				"Thursday: 6:00 PM – 11:00 PM",
				"Friday: 6:00 PM – 11:00 PM",
				"Saturday: 6:00 PM – 11:00 PM",
				"Sunday: 6:00 PM – 11:00 PM",
			},
		},
	},
}

// NewMockPlacesProvider creates a new mock places provider
func NewMockPlacesProvider() providers.PlacesProvider {
	return &MockPlacesProvider{}
}

// NearbySearch returns the fixtures listed under the category (mock implementation)
func (m *MockPlacesProvider) NearbySearch(ctx context.Context, req providers.NearbySearchRequest) ([]entities.RawPlace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []entities.RawPlace{}
	for _, p := range mockPlaces {
		if !containsCategory(p.category, req.Category) {
			continue
		}
		out = append(out, entities.RawPlace{
			PlaceID:  p.id + "@" + formatLatLng(req.Center),
			Name:     p.detail.Name,
			Category: req.Category,
		})
	}
	return out, nil
}

// PlaceDetails returns the fixture detail offset from the encoded center (mock implementation)
func (m *MockPlacesProvider) PlaceDetails(ctx context.Context, req providers.PlaceDetailsRequest) (*entities.PlaceDetail, error) {
	placeID := req.PlaceID
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, center, ok := splitMockID(placeID)
	if !ok {
		return nil, nil
	}
	for _, p := range mockPlaces {
		if p.id != id {
			continue
		}
		detail := p.detail
		detail.PlaceID = placeID
		detail.Location = &entities.Coordinates{
			Latitude:  center.Latitude + p.dLat,
			Longitude: center.Longitude + p.dLng,
		}
		return &detail, nil
	}
	return nil, nil
}

func splitMockID(placeID string) (string, entities.Coordinates, bool) {
	id, latLng, found := strings.Cut(placeID, "@")
	if !found {
		return "", entities.Coordinates{}, false
	}
	latStr, lngStr, found := strings.Cut(latLng, ",")
	if !found {
		return "", entities.Coordinates{}, false
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return "", entities.Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return "", entities.Coordinates{}, false
	}
	return id, entities.Coordinates{Latitude: lat, Longitude: lng}, true
}

func containsCategory(list, category string) bool {
	for _, c := range strings.Split(list, ",") {
		if c == category {
			return true
		}
	}
	return false
}

func strPtr(s string) *string { return &s }
