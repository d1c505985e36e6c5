package pg

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

type NewsStore struct {
	db *pgxpool.Pool
}

func NewNewsStore(pool *ConnectionPool) *NewsStore {
	return &NewsStore{db: pool.conn}
}

func (s *NewsStore) NewsBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]storage.NewsRecord, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}

	rows, err := s.db.Query(ctx, `
		SELECT subject_id, title, url, source_domain, author, image_url, published_at, relevance_score, fetched_at
		FROM brewery_news
		WHERE subject_id = $1
		ORDER BY relevance_score DESC, published_at DESC NULLS LAST, url
		LIMIT $2`,
		subjectID, lim,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	out := make([]storage.NewsRecord, 0)
	for rows.Next() {
		var n storage.NewsRecord
		if err := rows.Scan(
			&n.SubjectID,
			&n.Title,
			&n.URL,
			&n.SourceDomain,
			&n.Author,
			&n.ImageURL,
			&n.PublishedAt,
			&n.RelevanceScore,
			&n.FetchedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan news article: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate news: %w", err)
	}
	return out, nil
}

// UpsertNews writes all articles in one batch, replacing rows that share (subject_id, url).
func (s *NewsStore) UpsertNews(ctx context.Context, articles []storage.NewsRecord) error {
	if len(articles) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, a := range articles {
		batch.Queue(`
			INSERT INTO brewery_news (subject_id, title, url, source_domain, author, image_url, published_at, relevance_score, fetched_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (subject_id, url) DO UPDATE SET
				title = EXCLUDED.title,
				source_domain = EXCLUDED.source_domain,
				author = EXCLUDED.author,
				image_url = EXCLUDED.image_url,
				published_at = EXCLUDED.published_at,
				relevance_score = EXCLUDED.relevance_score,
				fetched_at = EXCLUDED.fetched_at`,
			a.SubjectID, a.Title, a.URL, a.SourceDomain, a.Author, a.ImageURL, a.PublishedAt, a.RelevanceScore, a.FetchedAt,
		)
	}

	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert news: %w", err)
	}
	return nil
}
