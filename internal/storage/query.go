package storage

import (
	"fmt"

	"github.com/google/uuid"
)

// Field names an exact-match lookup column.
type Field string

const (
	FieldAll     Field = ""
	FieldID      Field = "id"
	FieldSlug    Field = "slug"
	FieldPlaceID Field = "place_id"
	FieldCity    Field = "city"
	FieldType    Field = "type"
)

func (f Field) Valid() bool {
	switch f {
	case FieldAll, FieldID, FieldSlug, FieldPlaceID, FieldCity, FieldType:
		return true
	}
	return false
}

// Query is an exact-match filter on a single field. FieldAll matches every record.
// Limit <= 0 means unbounded.
type Query struct {
	Field Field
	Value string
	Limit int
}

func (q Query) Validate() error {
	if !q.Field.Valid() {
		return fmt.Errorf("unsupported lookup field: %q", q.Field)
	}
	return nil
}

// NearbyQuery is the input of a server-side proximity query.
type NearbyQuery struct {
	Lat          float64
	Lon          float64
	RadiusMeters float64
	Type         string
	Limit        int
}

// ConflictKey selects the unique column an upsert resolves conflicts on.
type ConflictKey string

const (
	ConflictNone    ConflictKey = ""
	ConflictID      ConflictKey = "id"
	ConflictPlaceID ConflictKey = "place_id"
)

// ConflictKeyFor picks the conflict key for rec: place id when present, else surrogate id, else none.
func ConflictKeyFor(rec EntryRecord) ConflictKey {
	switch {
	case rec.PlaceID != nil && *rec.PlaceID != "":
		return ConflictPlaceID
	case rec.ID != uuid.Nil:
		return ConflictID
	default:
		return ConflictNone
	}
}
