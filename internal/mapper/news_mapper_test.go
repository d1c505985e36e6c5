package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

func TestToNewsRecord_ClampsRelevance(t *testing.T) {
	id := uuid.New()
	fetched := time.Now().UTC()

	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{"below range", -1.5, 0},
		{"in range", 0.75, 0.75},
		{"above range", 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ToNewsRecord(domain.NewsArticle{SubjectID: id, URL: "https://a", Relevance: tt.score, FetchedAt: fetched})
			assert.Equal(t, tt.want, rec.RelevanceScore)
			assert.Equal(t, id, rec.SubjectID)
		})
	}
}

func TestToNews(t *testing.T) {
	pub := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	rec := storage.NewsRecord{
		SubjectID:      uuid.New(),
		Title:          "Brewery opens second taproom",
		URL:            "https://news.example/taproom",
		SourceDomain:   strPtr("news.example"),
		PublishedAt:    &pub,
		RelevanceScore: 0.8,
	}

	a := ToNews(rec)
	assert.Equal(t, rec.Title, a.Title)
	assert.Equal(t, 0.8, a.Relevance)
	assert.Equal(t, pub, *a.PublishedAt)
	assert.Equal(t, rec, ToNewsRecord(a))
}

func TestToReview_RoundTrip(t *testing.T) {
	ts := int64(1700000000)
	rec := storage.ReviewRecord{
		ID:         7,
		SubjectID:  uuid.New(),
		AuthorName: strPtr("Pat"),
		Rating:     f64Ptr(5),
		Text:       strPtr("Great saison"),
		Time:       &ts,
	}

	r := ToReview(rec)
	assert.Equal(t, "Pat", *r.AuthorName)
	assert.Equal(t, rec, ToReviewRecord(r))
}
