package news

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/brew-directory/internal/apperr"
	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/mapper"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

const DefaultListLimit = 5

// Service reads stored articles. Read failures degrade to an empty list.
type Service struct {
	reader storage.NewsReader
}

func NewService(reader storage.NewsReader) *Service {
	return &Service{reader: reader}
}

func (s *Service) Latest(ctx context.Context, subjectID uuid.UUID, limit int) []domain.NewsArticle {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	recs, err := s.reader.NewsBySubject(ctx, subjectID, limit)
	if err != nil {
		slog.Error("News read failed", "subject_id", subjectID, "error", apperr.NewRead("news_by_subject", err))
		return []domain.NewsArticle{}
	}
	return mapper.ToNewsList(recs)
}
