package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func intPtr(i int) *int         { return &i }

func fullRecord() storage.EntryRecord {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return storage.EntryRecord{
		ID:          uuid.New(),
		PlaceID:     strPtr("ChIJ123"),
		Slug:        "the-brewers-art-baltimore",
		Name:        "The Brewer's Art",
		Type:        strPtr("brewery"),
		Description: strPtr("Belgian style ales"),
		Address:     strPtr("1106 N Charles St"),
		City:        strPtr("Baltimore"),
		State:       strPtr("MD"),
		Zip:         strPtr("21201"),
		County:      strPtr("Baltimore City"),
		Latitude:    f64Ptr(39.3024),
		Longitude:   f64Ptr(-76.6161),
		Phone:       strPtr("410-547-6925"),
		Website:     strPtr("https://thebrewersart.com"),
		Rating:      f64Ptr(4.6),
		RatingCount: intPtr(1520),
		PriceLevel:  intPtr(2),
		Hours: map[string]*string{
			"monday": nil,
			"friday": strPtr("16:00-02:00"),
		},
		Photos:       []string{"a.jpg", "b.jpg"},
		Amenities:    []string{"patio", "food"},
		CreatedAt:    &now,
		UpdatedAt:    &now,
		LastSyncedAt: &now,
	}
}

func TestToEntry_NilCollectionsBecomeEmpty(t *testing.T) {
	e := ToEntry(storage.EntryRecord{Name: "Union Craft"})

	require.NotNil(t, e.Hours)
	require.NotNil(t, e.Photos)
	require.NotNil(t, e.Amenities)
	assert.Empty(t, e.Hours)
	assert.Empty(t, e.Photos)
	assert.Empty(t, e.Amenities)
	assert.Nil(t, e.Lat)
	assert.Nil(t, e.DistanceMiles)
}

func TestToEntry_CopiesFields(t *testing.T) {
	rec := fullRecord()
	e := ToEntry(rec)

	assert.Equal(t, rec.ID, e.ID)
	assert.Equal(t, "ChIJ123", *e.PlaceID)
	assert.Equal(t, rec.Name, e.Name)
	assert.Equal(t, 39.3024, *e.Lat)
	assert.Equal(t, -76.6161, *e.Lon)
	assert.Equal(t, 1520, *e.RatingCount)
	assert.Nil(t, e.Hours["monday"])
	assert.Equal(t, "16:00-02:00", *e.Hours["friday"])
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, e.Photos)

	e.Photos[0] = "changed.jpg"
	assert.Equal(t, "a.jpg", rec.Photos[0], "mapping must not alias the record's slices")
}

func TestToRecord_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rec  storage.EntryRecord
		want storage.EntryRecord
	}{
		{
			name: "all fields present",
			rec:  fullRecord(),
		},
		{
			name: "nil collections normalise to empty",
			rec:  storage.EntryRecord{Slug: "x", Name: "X"},
			want: storage.EntryRecord{
				Slug:      "x",
				Name:      "X",
				Hours:     map[string]*string{},
				Photos:    []string{},
				Amenities: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.want
			if want.Name == "" {
				want = tt.rec
			}
			assert.Equal(t, want, ToRecord(ToEntry(tt.rec)))
		})
	}
}

func TestToRecord_KeepsEmptyCollections(t *testing.T) {
	rec := ToRecord(ToEntry(storage.EntryRecord{}))

	assert.NotNil(t, rec.Hours)
	assert.NotNil(t, rec.Photos)
	assert.NotNil(t, rec.Amenities)
}

func TestToNearbyEntry_ConvertsMetersToMiles(t *testing.T) {
	e := ToNearbyEntry(storage.NearbyRecord{
		EntryRecord:    storage.EntryRecord{Name: "Fort McHenry"},
		DistanceMeters: 1609.344,
	})

	require.NotNil(t, e.DistanceMiles)
	assert.InDelta(t, 1.0, *e.DistanceMiles, 1e-9)
}

func TestToEntries_EmptyInput(t *testing.T) {
	out := ToEntries(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
