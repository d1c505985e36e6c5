package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// NewsArticle is an article associated with an Entry. (SubjectID, URL) is unique.
type NewsArticle struct {
	SubjectID    uuid.UUID  `json:"subjectId"`
	Title        string     `json:"title"`
	URL          string     `json:"url"`
	SourceDomain *string    `json:"sourceDomain,omitempty"`
	Author       *string    `json:"author,omitempty"`
	ImageURL     *string    `json:"imageUrl,omitempty"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	Relevance    float64    `json:"relevanceScore"`
	FetchedAt    time.Time  `json:"fetchedAt"`
}

// ClampRelevance bounds a relevance score to [0,1].
func ClampRelevance(score float64) float64 {
	switch {
	case math.IsNaN(score), score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}
