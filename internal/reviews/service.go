package reviews

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/brew-directory/internal/apperr"
	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/mapper"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
	"github.com/DjordjeVuckovic/brew-directory/pkg/pagination"
)

const (
	DefaultPageLimit = pagination.DefaultLimit
	MaxPageLimit     = pagination.MaxLimit
)

// Page is one window over the deduplicated reviews of a subject.
// Total counts reviews after deduplication.
type Page = pagination.OffsetResult[domain.Review]

type Service struct {
	reader storage.ReviewReader
}

func NewService(reader storage.ReviewReader) *Service {
	return &Service{reader: reader}
}

// Page never fails: a read error yields an empty page.
func (s *Service) Page(ctx context.Context, subjectID uuid.UUID, limit, offset int) Page {
	req := pagination.OffsetRequest{Limit: limit, Offset: offset}
	req.Normalize(DefaultPageLimit, MaxPageLimit)

	page, err := s.page(ctx, subjectID, req)
	if err != nil {
		slog.Error("Reviews read failed", "subject_id", subjectID, "error", err)
		return pagination.Empty[domain.Review](req)
	}
	return page
}

func (s *Service) page(ctx context.Context, subjectID uuid.UUID, req pagination.OffsetRequest) (Page, error) {
	recs, err := s.reader.ReviewsBySubject(ctx, subjectID)
	if err != nil {
		return Page{}, apperr.NewRead("reviews_by_subject", err)
	}

	return pagination.Window(Dedupe(mapper.ToReviews(recs)), req), nil
}
