// Package geo holds great-circle helpers used to rank places by walking time.
package geo

import (
	"math"

	"github.com/zatekoja/nearbycare/internal/domain/entities"
)

const (
	// EarthRadiusMeters is the mean Earth radius used by the haversine formula
	EarthRadiusMeters = 6371000.0

	// WalkingMetersPerMinute approximates 4.8 km/h
	WalkingMetersPerMinute = 80.0
)

// DistanceMeters returns the haversine distance between two points.
// Inputs are not validated; out-of-range coordinates give a meaningless but finite or NaN result.
func DistanceMeters(a, b entities.Coordinates) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	deltaLat := toRadians(b.Latitude - a.Latitude)
	deltaLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// WalkMinutes converts a straight-line distance into rounded walking minutes
func WalkMinutes(distanceMeters float64) int {
	return int(math.Round(distanceMeters / WalkingMetersPerMinute))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
