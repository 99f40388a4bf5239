package geo_test

import (
	"testing"

	"treasurehunt_server/geo"
	"treasurehunt_server/models"

	"github.com/stretchr/testify/require"
)

// TestDistanceMeters_knownPair verifies the haversine result against a known
// pair of coordinates roughly 1.3 km apart.
func TestDistanceMeters_knownPair(t *testing.T) {
	playerLocation := models.Location{Latitude: 50, Longitude: 100}
	treasureLocation := models.Location{Latitude: 50.01, Longitude: 100.01}

	require.Equal(t, 1322, geo.DistanceMeters(playerLocation, treasureLocation))
}

func TestDistanceMeters_symmetric(t *testing.T) {
	pairs := [][2]models.Location{
		{{Latitude: 50, Longitude: 100}, {Latitude: 50.01, Longitude: 100.01}},
		{{Latitude: -33.86, Longitude: 151.21}, {Latitude: 40.71, Longitude: -74.01}},
		{{Latitude: 0, Longitude: 0}, {Latitude: 0, Longitude: 180}},
		{{Latitude: 89.9, Longitude: 10}, {Latitude: -89.9, Longitude: 10}},
	}

	for _, pair := range pairs {
		require.Equal(t,
			geo.DistanceMeters(pair[0], pair[1]),
			geo.DistanceMeters(pair[1], pair[0]),
			"distance must be symmetric for %v", pair)
	}
}

func TestDistanceMeters_samePoint(t *testing.T) {
	here := models.Location{Latitude: 12.34, Longitude: 56.78}
	require.Equal(t, 0, geo.DistanceMeters(here, here))
}

// TestFinalBearingDegrees_knownPair verifies the documented example: due
// east along the 50th parallel comes out at 92 degrees, not exactly 90,
// because great circles converge toward the pole.
func TestFinalBearingDegrees_knownPair(t *testing.T) {
	start := models.Location{Latitude: 50, Longitude: 50}
	end := models.Location{Latitude: 50, Longitude: 55}

	require.Equal(t, 92, geo.FinalBearingDegrees(start, end))
}

func TestFinalBearingDegrees_notSymmetric(t *testing.T) {
	a := models.Location{Latitude: 50, Longitude: 50}
	b := models.Location{Latitude: 50, Longitude: 55}

	require.NotEqual(t, geo.FinalBearingDegrees(a, b), geo.FinalBearingDegrees(b, a))
}

func TestFinalBearingDegrees_inRange(t *testing.T) {
	locations := []models.Location{
		{Latitude: 50, Longitude: 50},
		{Latitude: -10, Longitude: 170},
		{Latitude: 80, Longitude: -120},
		{Latitude: -45, Longitude: 0},
	}

	for _, from := range locations {
		for _, to := range locations {
			if from == to {
				continue
			}
			bearing := geo.FinalBearingDegrees(from, to)
			require.GreaterOrEqual(t, bearing, 0)
			require.Less(t, bearing, 360)
		}
	}
}
