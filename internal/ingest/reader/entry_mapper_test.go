package reader

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/brew-directory/pkg/apis"
)

func loadTestMapping(t *testing.T) *apis.DataMapping {
	t.Helper()
	file, err := os.Open("testdata/breweries-mapping.yaml")
	require.NoError(t, err)
	defer file.Close()

	cfg, err := NewYAMLConfigLoader(file).Load(true)
	require.NoError(t, err)
	return cfg
}

func TestEntryMapper_Map(t *testing.T) {
	mapper := NewEntryMapper(loadTestMapping(t))

	entry, err := mapper.Map(map[string]string{
		"name":         "Side Project",
		"place_id":     "ChIJside",
		"type":         "brewery",
		"city":         "Maplewood",
		"state":        "MO",
		"latitude":     "38.6123",
		"longitude":    "-90.3241",
		"rating":       "4.8",
		"rating_count": "1200",
		"amenities":    "patio;barrel room",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Side Project", entry.Name)
	require.NotNil(t, entry.PlaceID)
	assert.Equal(t, "ChIJside", *entry.PlaceID)
	require.True(t, entry.HasLocation())
	assert.InDelta(t, -90.3241, *entry.Lon, 1e-9)
	require.NotNil(t, entry.RatingCount)
	assert.Equal(t, 1200, *entry.RatingCount)
	assert.Equal(t, []string{"patio", "barrel room"}, entry.Amenities)
	assert.True(t, entry.IsNew())
}

func TestEntryMapper_Map_MissingRequired(t *testing.T) {
	mapper := NewEntryMapper(loadTestMapping(t))

	_, err := mapper.Map(map[string]string{"name": "  ", "city": "Maplewood"}, nil)

	var mappingErr *apis.MappingError
	require.True(t, errors.As(err, &mappingErr))
	assert.Contains(t, mappingErr.Message, "name")
}

func TestEntryMapper_Map_StrictMode(t *testing.T) {
	mapper := NewEntryMapper(loadTestMapping(t))
	record := map[string]string{"name": "Side Project", "latitude": "north"}

	entry, err := mapper.Map(record, nil)
	require.NoError(t, err)
	assert.Nil(t, entry.Lat)

	_, err = mapper.Map(record, &MappingOptions{Strict: true})
	assert.Error(t, err)
}
