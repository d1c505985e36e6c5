// Package mapper translates between storage records and application entities.
// All functions are pure and total: missing optional fields never cause an error.
package mapper

import (
	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
	"github.com/DjordjeVuckovic/brew-directory/pkg/geo"
)

// ToEntry maps a storage record to its application shape.
// Nil hours, photos and amenities become empty collections.
func ToEntry(rec storage.EntryRecord) domain.Entry {
	return domain.Entry{
		ID:           rec.ID,
		PlaceID:      rec.PlaceID,
		Slug:         rec.Slug,
		Name:         rec.Name,
		Type:         rec.Type,
		Description:  rec.Description,
		Address:      rec.Address,
		City:         rec.City,
		State:        rec.State,
		Zip:          rec.Zip,
		County:       rec.County,
		Lat:          rec.Latitude,
		Lon:          rec.Longitude,
		Phone:        rec.Phone,
		Website:      rec.Website,
		Rating:       rec.Rating,
		RatingCount:  rec.RatingCount,
		PriceLevel:   rec.PriceLevel,
		Hours:        cloneHours(rec.Hours),
		Photos:       cloneStrings(rec.Photos),
		Amenities:    cloneStrings(rec.Amenities),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
		LastSyncedAt: rec.LastSyncedAt,
	}
}

// ToEntries maps a slice of records, returning an empty (non-nil) slice for no input.
func ToEntries(recs []storage.EntryRecord) []domain.Entry {
	out := make([]domain.Entry, 0, len(recs))
	for _, r := range recs {
		out = append(out, ToEntry(r))
	}
	return out
}

// ToNearbyEntry maps a server-side proximity candidate, converting its distance to miles.
func ToNearbyEntry(rec storage.NearbyRecord) domain.Entry {
	e := ToEntry(rec.EntryRecord)
	miles := geo.MetersToMiles(rec.DistanceMeters)
	e.DistanceMiles = &miles
	return e
}

// ToRecord maps an application entry to its storage shape.
// Empty collections are kept as empty, never omitted.
func ToRecord(e domain.Entry) storage.EntryRecord {
	return storage.EntryRecord{
		ID:           e.ID,
		PlaceID:      e.PlaceID,
		Slug:         e.Slug,
		Name:         e.Name,
		Type:         e.Type,
		Description:  e.Description,
		Address:      e.Address,
		City:         e.City,
		State:        e.State,
		Zip:          e.Zip,
		County:       e.County,
		Latitude:     e.Lat,
		Longitude:    e.Lon,
		Phone:        e.Phone,
		Website:      e.Website,
		Rating:       e.Rating,
		RatingCount:  e.RatingCount,
		PriceLevel:   e.PriceLevel,
		Hours:        cloneHours(e.Hours),
		Photos:       cloneStrings(e.Photos),
		Amenities:    cloneStrings(e.Amenities),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
		LastSyncedAt: e.LastSyncedAt,
	}
}

func cloneHours(h map[string]*string) map[string]*string {
	out := make(map[string]*string, len(h))
	for day, hours := range h {
		out[day] = hours
	}
	return out
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
