package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/nearbycare/internal/domain/entities"
)

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	points := []entities.Coordinates{
		{Latitude: 0, Longitude: 0},
		{Latitude: 35.0, Longitude: 139.0},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 89.9, Longitude: -179.9},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, DistanceMeters(p, p))
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := entities.Coordinates{Latitude: 35.6812, Longitude: 139.7671}
	b := entities.Coordinates{Latitude: 35.6586, Longitude: 139.7454}

	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMeters_OneDegreeOfLatitude(t *testing.T) {
	a := entities.Coordinates{Latitude: 0, Longitude: 0}
	b := entities.Coordinates{Latitude: 1, Longitude: 0}

	expected := EarthRadiusMeters * math.Pi / 180
	assert.InDelta(t, expected, DistanceMeters(a, b), 1e-6)
}

func TestWalkMinutes(t *testing.T) {
	assert.Equal(t, 0, WalkMinutes(0))
	assert.Equal(t, 1, WalkMinutes(80))
	assert.Equal(t, 2, WalkMinutes(120))
	assert.Equal(t, 20, WalkMinutes(1600))
}
