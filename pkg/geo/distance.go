// Package geo holds great-circle helpers used by proximity search.
package geo

import "math"

const (
	// EarthRadiusMiles is the mean Earth radius used by Distance.
	EarthRadiusMiles = 3959.0

	MilesPerKm    = 0.621371
	MetersPerKm   = 1000.0
	MetersPerMile = 1609.344
)

// Distance returns the Haversine distance in miles between two points given in decimal degrees.
// Inputs outside [-90,90] / [-180,180] are not validated.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// KmToMiles converts kilometers to miles.
func KmToMiles(km float64) float64 {
	return km * MilesPerKm
}

// KmToMeters converts kilometers to meters.
func KmToMeters(km float64) float64 {
	return km * MetersPerKm
}

// MetersToMiles converts meters to miles.
func MetersToMiles(m float64) float64 {
	return m / MetersPerMile
}

// ValidCoordinates reports whether lat/lon are inside WGS84 bounds.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
