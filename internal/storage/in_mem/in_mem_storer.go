package in_mem

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
	"github.com/google/uuid"
)

// InMemStorer keeps entries, reviews and news in process memory.
// It backs local runs and unit tests; it offers no server-side proximity query.
type InMemStorer struct {
	storageLock  sync.RWMutex
	entries      map[uuid.UUID]storage.EntryRecord
	reviews      []storage.ReviewRecord
	nextReviewID int64
	news         map[uuid.UUID]map[string]storage.NewsRecord

	now func() time.Time
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		entries: make(map[uuid.UUID]storage.EntryRecord),
		news:    make(map[uuid.UUID]map[string]storage.NewsRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *InMemStorer) GetCapabilities() storage.Capabilities {
	return storage.Capabilities{Nearby: false}
}

func (s *InMemStorer) FindMany(ctx context.Context, q storage.Query) ([]storage.EntryRecord, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := make([]storage.EntryRecord, 0)
	for _, rec := range s.entries {
		if matches(rec, q) {
			out = append(out, cloneRecord(rec))
		}
	}
	slices.SortFunc(out, func(a, b storage.EntryRecord) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *InMemStorer) FindOne(ctx context.Context, q storage.Query) (*storage.EntryRecord, error) {
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

func (s *InMemStorer) Upsert(ctx context.Context, rec storage.EntryRecord, key storage.ConflictKey) (*storage.EntryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	now := s.now()
	existing, found := s.lookupConflict(rec, key)
	if found {
		rec.ID = existing.ID
		rec.CreatedAt = coalesceTime(existing.CreatedAt, rec.CreatedAt)
		rec.LastSyncedAt = coalesceTime(existing.LastSyncedAt, rec.LastSyncedAt)
		updated := coalesceTime(rec.UpdatedAt, &now)
		if existing.UpdatedAt != nil {
			floor := existing.UpdatedAt.Add(time.Microsecond)
			if updated.Before(floor) {
				updated = &floor
			}
		}
		rec.UpdatedAt = updated
	} else {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		} else if _, taken := s.entries[rec.ID]; taken {
			return nil, fmt.Errorf("duplicate id %s", rec.ID)
		}
		rec.CreatedAt = coalesceTime(rec.CreatedAt, &now)
		rec.UpdatedAt = coalesceTime(rec.UpdatedAt, &now)
	}

	for id, other := range s.entries {
		if id == rec.ID {
			continue
		}
		if other.Slug == rec.Slug {
			return nil, fmt.Errorf("duplicate slug %q", rec.Slug)
		}
		if rec.PlaceID != nil && other.PlaceID != nil && *rec.PlaceID == *other.PlaceID {
			return nil, fmt.Errorf("duplicate place id %q", *rec.PlaceID)
		}
	}

	stored := cloneRecord(rec)
	s.entries[stored.ID] = stored
	slog.Debug("Upserted entry in memory", "id", stored.ID, "slug", stored.Slug, "conflict_key", key)

	out := cloneRecord(stored)
	return &out, nil
}

func (s *InMemStorer) lookupConflict(rec storage.EntryRecord, key storage.ConflictKey) (storage.EntryRecord, bool) {
	switch key {
	case storage.ConflictPlaceID:
		if rec.PlaceID == nil {
			return storage.EntryRecord{}, false
		}
		for _, e := range s.entries {
			if e.PlaceID != nil && *e.PlaceID == *rec.PlaceID {
				return e, true
			}
		}
	case storage.ConflictID:
		e, ok := s.entries[rec.ID]
		return e, ok
	}
	return storage.EntryRecord{}, false
}

// ReviewsBySubject orders by review time descending (missing times last), then by insertion order.
func (s *InMemStorer) ReviewsBySubject(ctx context.Context, subjectID uuid.UUID) ([]storage.ReviewRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := make([]storage.ReviewRecord, 0)
	for _, r := range s.reviews {
		if r.SubjectID == subjectID {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b storage.ReviewRecord) int {
		switch {
		case a.Time == nil && b.Time == nil:
		case a.Time == nil:
			return 1
		case b.Time == nil:
			return -1
		case *a.Time != *b.Time:
			return cmp.Compare(*b.Time, *a.Time)
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// AppendReviews never deduplicates; repeated ingestion accumulates copies.
func (s *InMemStorer) AppendReviews(ctx context.Context, reviews []storage.ReviewRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	now := s.now()
	for _, r := range reviews {
		if r.SubjectID == uuid.Nil {
			return fmt.Errorf("review without subject id")
		}
		s.nextReviewID++
		r.ID = s.nextReviewID
		r.CreatedAt = &now
		s.reviews = append(s.reviews, r)
	}
	return nil
}

func (s *InMemStorer) NewsBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]storage.NewsRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := make([]storage.NewsRecord, 0, len(s.news[subjectID]))
	for _, a := range s.news[subjectID] {
		out = append(out, a)
	}
	slices.SortFunc(out, compareNews)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *InMemStorer) UpsertNews(ctx context.Context, articles []storage.NewsRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, a := range articles {
		bySubject, ok := s.news[a.SubjectID]
		if !ok {
			bySubject = make(map[string]storage.NewsRecord)
			s.news[a.SubjectID] = bySubject
		}
		bySubject[a.URL] = a
	}
	return nil
}

// compareNews orders by relevance descending, then newest publication first, then url.
func compareNews(a, b storage.NewsRecord) int {
	if c := cmp.Compare(b.RelevanceScore, a.RelevanceScore); c != 0 {
		return c
	}
	switch {
	case a.PublishedAt != nil && b.PublishedAt != nil && !a.PublishedAt.Equal(*b.PublishedAt):
		return b.PublishedAt.Compare(*a.PublishedAt)
	case a.PublishedAt != nil && b.PublishedAt == nil:
		return -1
	case a.PublishedAt == nil && b.PublishedAt != nil:
		return 1
	}
	return cmp.Compare(a.URL, b.URL)
}

func matches(rec storage.EntryRecord, q storage.Query) bool {
	switch q.Field {
	case storage.FieldAll:
		return true
	case storage.FieldID:
		return rec.ID.String() == q.Value
	case storage.FieldSlug:
		return rec.Slug == q.Value
	case storage.FieldPlaceID:
		return rec.PlaceID != nil && *rec.PlaceID == q.Value
	case storage.FieldCity:
		return rec.City != nil && *rec.City == q.Value
	case storage.FieldType:
		return rec.Type != nil && *rec.Type == q.Value
	}
	return false
}

func coalesceTime(values ...*time.Time) *time.Time {
	for _, v := range values {
		if v != nil {
			t := *v
			return &t
		}
	}
	return nil
}

func cloneRecord(rec storage.EntryRecord) storage.EntryRecord {
	hours := make(map[string]*string, len(rec.Hours))
	for day, h := range rec.Hours {
		hours[day] = h
	}
	rec.Hours = hours
	rec.Photos = append(make([]string, 0, len(rec.Photos)), rec.Photos...)
	rec.Amenities = append(make([]string, 0, len(rec.Amenities)), rec.Amenities...)
	return rec
}
