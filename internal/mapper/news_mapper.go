package mapper

import (
	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

func ToNews(rec storage.NewsRecord) domain.NewsArticle {
	return domain.NewsArticle{
		SubjectID:    rec.SubjectID,
		Title:        rec.Title,
		URL:          rec.URL,
		SourceDomain: rec.SourceDomain,
		Author:       rec.Author,
		ImageURL:     rec.ImageURL,
		PublishedAt:  rec.PublishedAt,
		Relevance:    rec.RelevanceScore,
		FetchedAt:    rec.FetchedAt,
	}
}

func ToNewsList(recs []storage.NewsRecord) []domain.NewsArticle {
	out := make([]domain.NewsArticle, 0, len(recs))
	for _, r := range recs {
		out = append(out, ToNews(r))
	}
	return out
}

// ToNewsRecord maps an article to storage, clamping its relevance to [0,1].
func ToNewsRecord(a domain.NewsArticle) storage.NewsRecord {
	return storage.NewsRecord{
		SubjectID:      a.SubjectID,
		Title:          a.Title,
		URL:            a.URL,
		SourceDomain:   a.SourceDomain,
		Author:         a.Author,
		ImageURL:       a.ImageURL,
		PublishedAt:    a.PublishedAt,
		RelevanceScore: domain.ClampRelevance(a.Relevance),
		FetchedAt:      a.FetchedAt,
	}
}
