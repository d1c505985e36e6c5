package storage

import (
	"time"

	"github.com/google/uuid"
)

// EntryRecord is the storage shape of a directory entry: flat, snake_case, nullable.
type EntryRecord struct {
	ID          uuid.UUID `json:"id"`
	PlaceID     *string   `json:"place_id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Type        *string   `json:"type"`
	Description *string   `json:"description"`

	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	State     *string  `json:"state"`
	Zip       *string  `json:"zip"`
	County    *string  `json:"county"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Phone       *string  `json:"phone"`
	Website     *string  `json:"website"`
	Rating      *float64 `json:"rating"`
	RatingCount *int     `json:"rating_count"`
	PriceLevel  *int     `json:"price_level"`

	Hours     map[string]*string `json:"hours"`
	Photos    []string           `json:"photos"`
	Amenities []string           `json:"amenities"`

	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	LastSyncedAt *time.Time `json:"last_synced_at"`
}

// NearbyRecord is a candidate returned by a server-side proximity query.
type NearbyRecord struct {
	EntryRecord
	DistanceMeters float64 `json:"distance_meters"`
}

type ReviewRecord struct {
	ID              int64      `json:"id"`
	SubjectID       uuid.UUID  `json:"subject_id"`
	AuthorName      *string    `json:"author_name"`
	Rating          *float64   `json:"rating"`
	Text            *string    `json:"text"`
	RelativeDate    *string    `json:"relative_time_description"`
	Time            *int64     `json:"time"`
	Source          *string    `json:"source"`
	AuthorURL       *string    `json:"author_url"`
	ProfilePhotoURL *string    `json:"profile_photo_url"`
	CreatedAt       *time.Time `json:"created_at"`
}

type NewsRecord struct {
	SubjectID      uuid.UUID  `json:"subject_id"`
	Title          string     `json:"title"`
	URL            string     `json:"url"`
	SourceDomain   *string    `json:"source_domain"`
	Author         *string    `json:"author"`
	ImageURL       *string    `json:"image_url"`
	PublishedAt    *time.Time `json:"published_at"`
	RelevanceScore float64    `json:"relevance_score"`
	FetchedAt      time.Time  `json:"fetched_at"`
}
