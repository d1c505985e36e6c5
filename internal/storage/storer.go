package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("record not found")

// EntryReader is the public (unprivileged) read capability over directory entries.
type EntryReader interface {
	// FindMany returns records whose q.Field equals q.Value, at most q.Limit of them.
	FindMany(ctx context.Context, q Query) ([]EntryRecord, error)
	// FindOne returns the single record matching q or ErrNotFound.
	FindOne(ctx context.Context, q Query) (*EntryRecord, error)
}

// EntryWriter is the privileged insert-or-replace capability.
type EntryWriter interface {
	// Upsert writes rec, replacing the mutable fields of an existing record that matches on key.
	// created_at and last_synced_at of an existing record are never overwritten and
	// updated_at always moves forward.
	Upsert(ctx context.Context, rec EntryRecord, key ConflictKey) (*EntryRecord, error)
}

// NearbyQuerier is the optional server-side proximity capability.
type NearbyQuerier interface {
	Nearby(ctx context.Context, q NearbyQuery) ([]NearbyRecord, error)
}

// EntryIndexer mirrors entries into a secondary index.
type EntryIndexer interface {
	Index(ctx context.Context, rec EntryRecord) error
}

type ReviewReader interface {
	// ReviewsBySubject returns every stored review for subjectID, newest first.
	ReviewsBySubject(ctx context.Context, subjectID uuid.UUID) ([]ReviewRecord, error)
}

type ReviewWriter interface {
	AppendReviews(ctx context.Context, reviews []ReviewRecord) error
}

type NewsReader interface {
	// NewsBySubject returns up to limit articles for subjectID, most relevant first.
	NewsBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]NewsRecord, error)
}

type NewsWriter interface {
	UpsertNews(ctx context.Context, articles []NewsRecord) error
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
