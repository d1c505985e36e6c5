package pg

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

var reviewColumns = []string{
	"subject_id", "author_name", "rating", "text", "relative_time_description",
	"time", "source", "author_url", "profile_photo_url",
}

type ReviewStore struct {
	db *pgxpool.Pool
}

func NewReviewStore(pool *ConnectionPool) *ReviewStore {
	return &ReviewStore{db: pool.conn}
}

func (s *ReviewStore) ReviewsBySubject(ctx context.Context, subjectID uuid.UUID) ([]storage.ReviewRecord, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, subject_id, author_name, rating, text, relative_time_description,
		       time, source, author_url, profile_photo_url, created_at
		FROM reviews
		WHERE subject_id = $1
		ORDER BY time DESC NULLS LAST, id`,
		subjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	out := make([]storage.ReviewRecord, 0)
	for rows.Next() {
		var r storage.ReviewRecord
		if err := rows.Scan(
			&r.ID,
			&r.SubjectID,
			&r.AuthorName,
			&r.Rating,
			&r.Text,
			&r.RelativeDate,
			&r.Time,
			&r.Source,
			&r.AuthorURL,
			&r.ProfilePhotoURL,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}
	return out, nil
}

// AppendReviews bulk-copies reviews. Nothing is deduplicated on write.
func (s *ReviewStore) AppendReviews(ctx context.Context, reviews []storage.ReviewRecord) error {
	if len(reviews) == 0 {
		return nil
	}

	rows := make([][]any, len(reviews))
	for i, r := range reviews {
		rows[i] = []any{
			r.SubjectID,
			r.AuthorName,
			r.Rating,
			r.Text,
			r.RelativeDate,
			r.Time,
			r.Source,
			r.AuthorURL,
			r.ProfilePhotoURL,
		}
	}

	_, err := s.db.CopyFrom(ctx, pgx.Identifier{"reviews"}, reviewColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to bulk insert reviews: %w", err)
	}
	return nil
}
