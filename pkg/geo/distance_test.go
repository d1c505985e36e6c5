package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{39.2904, -76.6122},
		{0, 0},
		{-33.8688, 151.2093},
		{89.9, 179.9},
	}

	for _, p := range points {
		assert.InDelta(t, 0.0, Distance(p[0], p[1], p[0], p[1]), 1e-9)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"baltimore to annapolis", 39.2904, -76.6122, 38.9784, -76.4922},
		{"across meridian", 51.5, -0.1, 48.85, 2.35},
		{"southern hemisphere", -33.86, 151.2, -37.81, 144.96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			ba := Distance(tt.lat2, tt.lon2, tt.lat1, tt.lon1)
			assert.InDelta(t, ab, ba, 1e-9)
		})
	}
}

func TestDistance_KnownValue(t *testing.T) {
	// Baltimore -> Washington DC is roughly 35 miles as the crow flies.
	d := Distance(39.2904, -76.6122, 38.9072, -77.0369)
	assert.InDelta(t, 35.0, d, 1.0)
}

func TestConversions(t *testing.T) {
	assert.InDelta(t, 3.106855, KmToMiles(5), 1e-6)
	assert.Equal(t, 5000.0, KmToMeters(5))
	assert.InDelta(t, 1.0, MetersToMiles(MetersPerMile), 1e-12)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(39.29, -76.61))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
}
