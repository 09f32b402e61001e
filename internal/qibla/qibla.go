// Package qibla computes the qibla bearing for a coordinate: the initial
// great-circle bearing (forward azimuth) from the given point to the Kaaba.
package qibla

import "math"

// Kaaba coordinates, the fixed reference point of every bearing.
const (
	KaabaLatitude  = 21.4225
	KaabaLongitude = 39.8262
)

// octants has a trailing "N" so that bearings rounding up to 360 wrap
// back to north without a modulo.
var octants = [9]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW", "N"}

// Bearing returns the qibla direction from (lat, lon) in whole degrees
// within [0, 360) together with the nearest 8-point compass label.
// The zero-distance case (standing at the Kaaba) yields 0 and "N".
func Bearing(lat, lon float64) (int, string) {
	latRad := radians(lat)
	lonRad := radians(lon)
	kLatRad := radians(KaabaLatitude)
	kLonRad := radians(KaabaLongitude)

	lonDelta := kLonRad - lonRad
	y := math.Sin(lonDelta) * math.Cos(kLatRad)
	x := math.Cos(latRad)*math.Sin(kLatRad) -
		math.Sin(latRad)*math.Cos(kLatRad)*math.Cos(lonDelta)

	angle := degrees(math.Atan2(y, x))
	deg := math.Mod(angle+360, 360)

	return int(deg), octants[int(math.Round(deg/45))]
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
