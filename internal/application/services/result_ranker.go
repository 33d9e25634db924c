package services

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/zatekoja/nearbycare/internal/domain/entities"
	"github.com/zatekoja/nearbycare/pkg/geo"
)

const walkingDirectionsURL = "https://www.google.com/maps/dir/"

// ResultRanker turns place details into the public, walk-time ordered result list
type ResultRanker struct{}

// NewResultRanker creates a new result ranker
func NewResultRanker() *ResultRanker {
	return &ResultRanker{}
}

// Rank drops places closed on weekday, annotates the rest with walking
// minutes and a directions link, and sorts by walking minutes with unknown
// distances last. Ties keep their input order.
func (r *ResultRanker) Rank(origin entities.Coordinates, details []entities.PlaceDetail, weekday time.Weekday) []entities.ResultItem {
	items := make([]entities.ResultItem, 0, len(details))
	for _, detail := range details {
		if !IsOpenOn(weekday, detail.OpeningHoursLines) {
			continue
		}

		item := entities.ResultItem{
			Name:         detail.Name,
			Address:      detail.Address,
			Phone:        detail.Phone,
			Website:      detail.Website,
			OpeningHours: detail.OpeningHoursLines,
		}
		if detail.Location != nil {
			// a non-finite distance is treated like a missing location
			if distance := geo.DistanceMeters(origin, *detail.Location); !math.IsNaN(distance) && !math.IsInf(distance, 0) {
				minutes := geo.WalkMinutes(distance)
				mapsURL := WalkingDirectionsURL(origin, *detail.Location)
				item.WalkMinutes = &minutes
				item.MapsURL = &mapsURL
			}
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].WalkMinutes, items[j].WalkMinutes
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	return items
}

// WalkingDirectionsURL builds a Google Maps walking directions deep link
func WalkingDirectionsURL(origin, destination entities.Coordinates) string {
	return walkingDirectionsURL + "?api=1" +
		"&origin=" + formatCoordinates(origin) +
		"&destination=" + formatCoordinates(destination) +
		"&travelmode=walking"
}

func formatCoordinates(c entities.Coordinates) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
