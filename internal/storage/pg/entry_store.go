package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

var entryColumnNames = []string{
	"id", "place_id", "slug", "name", "type", "description", "address", "city", "state", "zip", "county",
	"latitude", "longitude", "phone", "website", "rating", "rating_count", "price_level", "hours", "photos", "amenities",
	"created_at", "updated_at", "last_synced_at",
}

var entryColumns = strings.Join(entryColumnNames, ", ")

var upsertEntrySQL = `
	INSERT INTO attractions (` + entryColumns + `)
	VALUES (COALESCE($1, gen_random_uuid()), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
	        $12, $13, $14, $15, $16, $17, $18, $19, $20, $21,
	        COALESCE($22, now()), COALESCE($23, now()), $24)`

const conflictUpdateSQL = ` DO UPDATE SET
	place_id = EXCLUDED.place_id,
	slug = EXCLUDED.slug,
	name = EXCLUDED.name,
	type = EXCLUDED.type,
	description = EXCLUDED.description,
	address = EXCLUDED.address,
	city = EXCLUDED.city,
	state = EXCLUDED.state,
	zip = EXCLUDED.zip,
	county = EXCLUDED.county,
	latitude = EXCLUDED.latitude,
	longitude = EXCLUDED.longitude,
	phone = EXCLUDED.phone,
	website = EXCLUDED.website,
	rating = EXCLUDED.rating,
	rating_count = EXCLUDED.rating_count,
	price_level = EXCLUDED.price_level,
	hours = EXCLUDED.hours,
	photos = EXCLUDED.photos,
	amenities = EXCLUDED.amenities,
	created_at = COALESCE(attractions.created_at, EXCLUDED.created_at),
	last_synced_at = COALESCE(attractions.last_synced_at, EXCLUDED.last_synced_at),
	updated_at = GREATEST(EXCLUDED.updated_at, attractions.updated_at + INTERVAL '1 microsecond')`

// EntryStore reads and writes directory entries. Construct one per credential:
// the public pool backs reads, the admin pool backs Upsert.
type EntryStore struct {
	db *pgxpool.Pool
}

func NewEntryStore(pool *ConnectionPool) *EntryStore {
	return &EntryStore{db: pool.conn}
}

func (s *EntryStore) GetCapabilities() storage.Capabilities {
	return storage.Capabilities{Nearby: true}
}

func (s *EntryStore) FindMany(ctx context.Context, q storage.Query) ([]storage.EntryRecord, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var limit *int
	if q.Limit > 0 {
		limit = &q.Limit
	}

	sql := `SELECT ` + entryColumns + ` FROM attractions`
	args := []any{limit}
	if q.Field != storage.FieldAll {
		value, err := lookupValue(q)
		if err != nil {
			return []storage.EntryRecord{}, nil
		}
		sql += fmt.Sprintf(` WHERE %s = $2`, q.Field)
		args = append(args, value)
	}
	sql += ` ORDER BY name, id LIMIT $1`

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attractions by %s: %w", q.Field, err)
	}
	defer rows.Close()

	out := make([]storage.EntryRecord, 0)
	for rows.Next() {
		rec, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attractions: %w", err)
	}
	return out, nil
}

func (s *EntryStore) FindOne(ctx context.Context, q storage.Query) (*storage.EntryRecord, error) {
	q.Limit = 1
	recs, err := s.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, storage.ErrNotFound
	}
	return &recs[0], nil
}

func (s *EntryStore) Upsert(ctx context.Context, rec storage.EntryRecord, key storage.ConflictKey) (*storage.EntryRecord, error) {
	sql := upsertEntrySQL
	switch key {
	case storage.ConflictPlaceID, storage.ConflictID:
		sql += ` ON CONFLICT (` + string(key) + `)` + conflictUpdateSQL
	case storage.ConflictNone:
	default:
		return nil, fmt.Errorf("unsupported conflict key: %q", key)
	}
	sql += ` RETURNING ` + entryColumns

	hours := rec.Hours
	if hours == nil {
		hours = map[string]*string{}
	}
	hoursJSON, err := json.Marshal(hours)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hours: %w", err)
	}

	var id *uuid.UUID
	if rec.ID != uuid.Nil {
		id = &rec.ID
	}

	row := s.db.QueryRow(ctx, sql,
		id,
		rec.PlaceID,
		rec.Slug,
		rec.Name,
		rec.Type,
		rec.Description,
		rec.Address,
		rec.City,
		rec.State,
		rec.Zip,
		rec.County,
		rec.Latitude,
		rec.Longitude,
		rec.Phone,
		rec.Website,
		rec.Rating,
		rec.RatingCount,
		rec.PriceLevel,
		hoursJSON,
		nonNil(rec.Photos),
		nonNil(rec.Amenities),
		rec.CreatedAt,
		rec.UpdatedAt,
		rec.LastSyncedAt,
	)

	out, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert attraction %q: %w", rec.Slug, err)
	}
	slog.Debug("Upserted attraction", "id", out.ID, "slug", out.Slug, "conflict_key", key)
	return &out, nil
}

// Nearby calls the nearby_attractions SQL function and joins the candidates back to their rows.
func (s *EntryStore) Nearby(ctx context.Context, q storage.NearbyQuery) ([]storage.NearbyRecord, error) {
	var typ *string
	if q.Type != "" {
		typ = &q.Type
	}
	var limit *int
	if q.Limit > 0 {
		limit = &q.Limit
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+prefixed("a", entryColumnNames)+`, n.distance_meters
		FROM nearby_attractions($1, $2, $3, $4) AS n
		JOIN attractions a ON a.id = n.attraction_id
		ORDER BY n.distance_meters, a.id
		LIMIT $5`,
		q.Lat, q.Lon, q.RadiusMeters, typ, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby attractions: %w", err)
	}
	defer rows.Close()

	out := make([]storage.NearbyRecord, 0)
	for rows.Next() {
		var distance float64
		rec, err := scanEntry(rows, &distance)
		if err != nil {
			return nil, err
		}
		out = append(out, storage.NearbyRecord{EntryRecord: rec, DistanceMeters: distance})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate nearby attractions: %w", err)
	}
	return out, nil
}

func lookupValue(q storage.Query) (any, error) {
	if q.Field == storage.FieldID {
		id, err := uuid.Parse(q.Value)
		if err != nil {
			return nil, err
		}
		return id, nil
	}
	return q.Value, nil
}

func scanEntry(row pgx.Row, extra ...any) (storage.EntryRecord, error) {
	var rec storage.EntryRecord
	var hoursJSON []byte

	dest := []any{
		&rec.ID,
		&rec.PlaceID,
		&rec.Slug,
		&rec.Name,
		&rec.Type,
		&rec.Description,
		&rec.Address,
		&rec.City,
		&rec.State,
		&rec.Zip,
		&rec.County,
		&rec.Latitude,
		&rec.Longitude,
		&rec.Phone,
		&rec.Website,
		&rec.Rating,
		&rec.RatingCount,
		&rec.PriceLevel,
		&hoursJSON,
		&rec.Photos,
		&rec.Amenities,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.LastSyncedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rec, storage.ErrNotFound
		}
		return rec, fmt.Errorf("failed to scan attraction: %w", err)
	}

	if len(hoursJSON) > 0 {
		if err := json.Unmarshal(hoursJSON, &rec.Hours); err != nil {
			return rec, fmt.Errorf("failed to unmarshal hours: %w", err)
		}
	}
	return rec, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func prefixed(alias string, columns []string) string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = alias + "." + col
	}
	return strings.Join(out, ", ")
}
