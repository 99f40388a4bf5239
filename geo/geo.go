// Package geo provides the great-circle math used to steer a player toward
// the treasure and to decide a win.
package geo

import (
	"math"

	"treasurehunt_server/models"
)

const earthRadiusMeters = 6371e3

// DistanceMeters calculates the haversine distance between two locations,
// rounded to the nearest meter. Symmetric in its arguments.
func DistanceMeters(a, b models.Location) int {
	aLatRad := degToRad(a.Latitude)
	bLatRad := degToRad(b.Latitude)
	deltaLatRad := degToRad(b.Latitude - a.Latitude)
	deltaLongRad := degToRad(b.Longitude - a.Longitude)

	h := math.Sin(deltaLatRad/2)*math.Sin(deltaLatRad/2) +
		math.Cos(aLatRad)*math.Cos(bLatRad)*
			math.Sin(deltaLongRad/2)*math.Sin(deltaLongRad/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return int(math.Round(earthRadiusMeters * c))
}

// FinalBearingDegrees calculates the direction of travel from `from` toward
// `to` in integer degrees [0, 360). The forward azimuth is evaluated with the
// endpoints swapped and rotated by 180, which yields the bearing at the
// player's position rather than at the treasure.
func FinalBearingDegrees(from, to models.Location) int {
	startLat := degToRad(to.Latitude)
	startLong := degToRad(to.Longitude)
	endLat := degToRad(from.Latitude)
	endLong := degToRad(from.Longitude)

	y := math.Sin(endLong-startLong) * math.Cos(endLat)
	x := math.Cos(startLat)*math.Sin(endLat) -
		math.Sin(startLat)*math.Cos(endLat)*math.Cos(endLong-startLong)

	initialBearing := math.Mod(math.Atan2(y, x)*180/math.Pi+360, 360)
	finalBearing := math.Mod(initialBearing+180, 360)

	return int(math.Round(finalBearing)) % 360
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
