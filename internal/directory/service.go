// Package directory is the access layer over directory entries.
//
// Reads degrade: internally every read returns (T, error), and the exported methods
// log the error and return an empty or nil value. Writes fail loudly.
package directory

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/brew-directory/internal/apperr"
	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/mapper"
	"github.com/DjordjeVuckovic/brew-directory/internal/proximity"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
	"github.com/DjordjeVuckovic/brew-directory/pkg/geo"
	"github.com/DjordjeVuckovic/brew-directory/pkg/slug"
)

const DefaultListLimit = 50

type Service struct {
	reader   storage.EntryReader
	writer   storage.EntryWriter
	resolver *proximity.Resolver
	indexer  storage.EntryIndexer
	now      func() time.Time
}

type Option func(*Service)

func WithResolver(r *proximity.Resolver) Option {
	return func(s *Service) {
		s.resolver = r
	}
}

// WithIndexer mirrors every successful upsert into a secondary index.
func WithIndexer(i storage.EntryIndexer) Option {
	return func(s *Service) {
		s.indexer = i
	}
}

// NewService wires the public reader and the privileged writer. writer may be nil,
// in which case every write fails with apperr.ErrAdminCredentialMissing.
func NewService(reader storage.EntryReader, writer storage.EntryWriter, opts ...Option) *Service {
	s := &Service{
		reader: reader,
		writer: writer,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = proximity.NewResolver(reader)
	}
	return s
}

func (s *Service) AttractionsNearBrewery(ctx context.Context, lat, lon, radiusKm float64, limit int, typ string) []domain.Entry {
	return s.resolver.Resolve(ctx, proximity.Request{
		Lat:      lat,
		Lon:      lon,
		RadiusKm: radiusKm,
		Limit:    limit,
		Type:     typ,
	})
}

func (s *Service) AttractionsByCity(ctx context.Context, city string, limit int) []domain.Entry {
	entries, err := s.findMany(ctx, "attractions_by_city", storage.FieldCity, city, limit)
	return degradeList("attractions_by_city", entries, err)
}

func (s *Service) AttractionsByType(ctx context.Context, typ string, limit int) []domain.Entry {
	entries, err := s.findMany(ctx, "attractions_by_type", storage.FieldType, typ, limit)
	return degradeList("attractions_by_type", entries, err)
}

func (s *Service) AttractionBySlug(ctx context.Context, slug string) *domain.Entry {
	entry, err := s.findOne(ctx, "attraction_by_slug", storage.FieldSlug, slug)
	return degradeOne("attraction_by_slug", entry, err)
}

func (s *Service) AttractionByPlaceID(ctx context.Context, placeID string) *domain.Entry {
	entry, err := s.findOne(ctx, "attraction_by_place_id", storage.FieldPlaceID, placeID)
	return degradeOne("attraction_by_place_id", entry, err)
}

func (s *Service) AttractionByID(ctx context.Context, id string) *domain.Entry {
	entry, err := s.findOne(ctx, "attraction_by_id", storage.FieldID, id)
	return degradeOne("attraction_by_id", entry, err)
}

// AllAttractions lists every entry, or every entry of typ when it is set. Unlike the
// lookups above it reports read failures, since ingestion commands must not mistake
// an outage for an empty directory.
func (s *Service) AllAttractions(ctx context.Context, typ string) ([]domain.Entry, error) {
	q := storage.Query{Field: storage.FieldAll}
	if typ != "" {
		q = storage.Query{Field: storage.FieldType, Value: typ}
	}
	recs, err := s.reader.FindMany(ctx, q)
	if err != nil {
		return nil, apperr.NewRead("all_attractions", err)
	}
	return mapper.ToEntries(recs), nil
}

// UpsertAttraction inserts or replaces e and returns the stored entry.
// The conflict key is the place id when present, else the surrogate id.
func (s *Service) UpsertAttraction(ctx context.Context, e domain.Entry) (*domain.Entry, error) {
	if s.writer == nil {
		return nil, apperr.ErrAdminCredentialMissing
	}
	if err := validate(e); err != nil {
		return nil, err
	}

	now := s.now()
	e.UpdatedAt = &now
	if e.IsNew() && e.CreatedAt == nil {
		e.CreatedAt = &now
	}
	if e.Slug == "" {
		city := ""
		if e.City != nil {
			city = *e.City
		}
		e.Slug = slug.Make(e.Name, city)
	}

	rec := mapper.ToRecord(e)
	key := storage.ConflictKeyFor(rec)

	stored, err := s.writer.Upsert(ctx, rec, key)
	if err != nil {
		return nil, apperr.NewWrite("upsert_attraction", err)
	}

	if s.indexer != nil {
		if err := s.indexer.Index(ctx, *stored); err != nil {
			slog.Warn("Failed to mirror attraction into index", "id", stored.ID, "error", err)
		}
	}

	slog.Info("Attraction upserted", "id", stored.ID, "slug", stored.Slug, "conflict_key", key)
	out := mapper.ToEntry(*stored)
	return &out, nil
}

func validate(e domain.Entry) error {
	if e.Name == "" {
		return apperr.NewValidation("name is required")
	}
	if e.PartialLocation() {
		return apperr.NewValidation("latitude and longitude must both be present or both absent")
	}
	if e.HasLocation() && !geo.ValidCoordinates(*e.Lat, *e.Lon) {
		return apperr.NewValidation("coordinates out of range")
	}
	return nil
}

func (s *Service) findMany(ctx context.Context, op string, field storage.Field, value string, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	recs, err := s.reader.FindMany(ctx, storage.Query{Field: field, Value: value, Limit: limit})
	if err != nil {
		return nil, apperr.NewRead(op, err)
	}
	return mapper.ToEntries(recs), nil
}

func (s *Service) findOne(ctx context.Context, op string, field storage.Field, value string) (*domain.Entry, error) {
	rec, err := s.reader.FindOne(ctx, storage.Query{Field: field, Value: value})
	if err != nil {
		return nil, apperr.NewRead(op, err)
	}
	entry := mapper.ToEntry(*rec)
	return &entry, nil
}

func degradeList(op string, entries []domain.Entry, err error) []domain.Entry {
	if err != nil {
		slog.Error("Directory read failed", "op", op, "error", err)
		return []domain.Entry{}
	}
	return entries
}

func degradeOne(op string, entry *domain.Entry, err error) *domain.Entry {
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Error("Directory read failed", "op", op, "error", err)
		}
		return nil
	}
	return entry
}
