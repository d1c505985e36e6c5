package enrich

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"

	"github.com/DjordjeVuckovic/brew-directory/internal/directory"
	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage/in_mem"
)

type fakeDetails struct {
	result maps.PlaceDetailsResult
	err    error
	req    *maps.PlaceDetailsRequest
}

func (f *fakeDetails) PlaceDetails(_ context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error) {
	f.req = r
	return f.result, f.err
}

func details() maps.PlaceDetailsResult {
	return maps.PlaceDetailsResult{
		Name:                 "The Brewer's Art",
		FormattedAddress:     "1106 N Charles St, Baltimore, MD 21201, USA",
		FormattedPhoneNumber: "(410) 547-6925",
		Website:              "https://thebrewersart.com/",
		AddressComponents: []maps.AddressComponent{
			{LongName: "Baltimore", ShortName: "Baltimore", Types: []string{"locality", "political"}},
			{LongName: "Maryland", ShortName: "MD", Types: []string{"administrative_area_level_1", "political"}},
			{LongName: "21201", ShortName: "21201", Types: []string{"postal_code"}},
		},
		Geometry:         maps.AddressGeometry{Location: maps.LatLng{Lat: 39.3024, Lng: -76.6161}},
		Rating:           4.6,
		UserRatingsTotal: 1520,
		PriceLevel:       2,
		OpeningHours: &maps.OpeningHours{WeekdayText: []string{
			"Monday: Closed",
			"Friday: 4:00 PM – 2:00 AM",
		}},
		Photos: []maps.Photo{{PhotoReference: "ref-1"}, {PhotoReference: ""}},
		Reviews: []maps.PlaceReview{
			{AuthorName: "Pat", Rating: 5, Text: "Best Belgian ales in town", Time: 1700000000},
			{AuthorName: "Lee", Rating: 4, Text: "Cozy", Time: 1690000000},
		},
	}
}

func TestHours(t *testing.T) {
	h := Hours([]string{"Monday: Closed", "Tuesday: 11:00 AM – 10:00 PM", "garbage"})

	require.Len(t, h, 2)
	assert.Nil(t, h["monday"])
	assert.Equal(t, "11:00 AM – 10:00 PM", *h["tuesday"])
}

func TestApplyDetails(t *testing.T) {
	placeID := "ChIJ-brewers-art"
	synced := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	desc := "Belgian style brewpub"

	e := ApplyDetails(domain.Entry{Name: "Brewers Art", PlaceID: &placeID, Description: &desc}, details(), synced)

	assert.Equal(t, "The Brewer's Art", e.Name)
	assert.Equal(t, "Baltimore", *e.City)
	assert.Equal(t, "MD", *e.State)
	assert.Equal(t, "21201", *e.Zip)
	assert.Nil(t, e.County)
	assert.Equal(t, 39.3024, *e.Lat)
	assert.Equal(t, -76.6161, *e.Lon)
	assert.InDelta(t, 4.6, *e.Rating, 1e-6)
	assert.Equal(t, 1520, *e.RatingCount)
	assert.Equal(t, 2, *e.PriceLevel)
	assert.Equal(t, []string{"ref-1"}, e.Photos)
	assert.Nil(t, e.Hours["monday"])
	assert.Equal(t, "Belgian style brewpub", *e.Description, "fields Places does not return are kept")
	assert.Equal(t, synced, *e.LastSyncedAt)
}

func TestReviews(t *testing.T) {
	subject := uuid.New()
	reviews := Reviews(subject, details())

	require.Len(t, reviews, 2)
	assert.Equal(t, subject, reviews[0].SubjectID)
	assert.Equal(t, ReviewSource, *reviews[0].Source)
	assert.Equal(t, int64(1700000000), *reviews[0].Time)
	assert.Equal(t, 5.0, *reviews[0].Rating)
}

func TestEnricher_Enrich(t *testing.T) {
	store := in_mem.NewInMemStorer()
	dir := directory.NewService(store, store)
	client := &fakeDetails{result: details()}

	en, err := NewEnricher(client, dir, store)
	require.NoError(t, err)

	placeID := "ChIJ-brewers-art"
	stored, n, err := en.Enrich(context.Background(), domain.Entry{Name: "Brewers Art", PlaceID: &placeID})
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, placeID, client.req.PlaceID)
	assert.NotEmpty(t, client.req.Fields)
	assert.Equal(t, "the-brewers-art-baltimore", stored.Slug)

	// enrichment is repeatable: the entry is replaced and reviews accumulate
	_, _, err = en.Enrich(context.Background(), *stored)
	require.NoError(t, err)

	reviews, err := store.ReviewsBySubject(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 4)
	assert.Len(t, dir.AttractionsByCity(context.Background(), "Baltimore", 10), 1)
}

func TestEnricher_Errors(t *testing.T) {
	store := in_mem.NewInMemStorer()
	en, err := NewEnricher(&fakeDetails{err: errors.New("REQUEST_DENIED")}, directory.NewService(store, store), store)
	require.NoError(t, err)

	_, _, err = en.Enrich(context.Background(), domain.Entry{Name: "No Place"})
	assert.ErrorIs(t, err, ErrNoPlaceID)

	placeID := "ChIJ"
	_, _, err = en.Enrich(context.Background(), domain.Entry{Name: "Denied", PlaceID: &placeID})
	assert.Error(t, err)
}
