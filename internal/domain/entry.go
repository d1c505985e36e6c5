package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is the application-facing shape of a directory listing (brewery or attraction).
// Collections are never nil once an Entry has passed through the record mapper.
type Entry struct {
	ID          uuid.UUID `json:"id"`
	PlaceID     *string   `json:"placeId,omitempty"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Type        *string   `json:"type,omitempty"`
	Description *string   `json:"description,omitempty"`

	Address *string  `json:"address,omitempty"`
	City    *string  `json:"city,omitempty"`
	State   *string  `json:"state,omitempty"`
	Zip     *string  `json:"zip,omitempty"`
	County  *string  `json:"county,omitempty"`
	Lat     *float64 `json:"latitude,omitempty"`
	Lon     *float64 `json:"longitude,omitempty"`

	Phone       *string  `json:"phone,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	RatingCount *int     `json:"ratingCount,omitempty"`
	PriceLevel  *int     `json:"priceLevel,omitempty"`

	// Hours maps a day name to its opening hours; a nil value means closed that day.
	Hours     map[string]*string `json:"hours"`
	Photos    []string           `json:"photos"`
	Amenities []string           `json:"amenities"`

	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	LastSyncedAt *time.Time `json:"lastSyncedAt,omitempty"`

	// DistanceMiles is only set on proximity results.
	DistanceMiles *float64 `json:"distance,omitempty"`
}

// HasLocation reports whether both coordinates are present.
func (e Entry) HasLocation() bool {
	return e.Lat != nil && e.Lon != nil
}

// PartialLocation reports whether exactly one coordinate is present, which is never valid.
func (e Entry) PartialLocation() bool {
	return (e.Lat == nil) != (e.Lon == nil)
}

// IsNew reports whether the store has not assigned a surrogate id yet.
func (e Entry) IsNew() bool {
	return e.ID == uuid.Nil
}
