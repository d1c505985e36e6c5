package mapper

import (
	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

func ToReview(rec storage.ReviewRecord) domain.Review {
	return domain.Review{
		ID:              rec.ID,
		SubjectID:       rec.SubjectID,
		AuthorName:      rec.AuthorName,
		Rating:          rec.Rating,
		Text:            rec.Text,
		RelativeDate:    rec.RelativeDate,
		Time:            rec.Time,
		Source:          rec.Source,
		AuthorURL:       rec.AuthorURL,
		ProfilePhotoURL: rec.ProfilePhotoURL,
	}
}

func ToReviews(recs []storage.ReviewRecord) []domain.Review {
	out := make([]domain.Review, 0, len(recs))
	for _, r := range recs {
		out = append(out, ToReview(r))
	}
	return out
}

func ToReviewRecord(r domain.Review) storage.ReviewRecord {
	return storage.ReviewRecord{
		ID:              r.ID,
		SubjectID:       r.SubjectID,
		AuthorName:      r.AuthorName,
		Rating:          r.Rating,
		Text:            r.Text,
		RelativeDate:    r.RelativeDate,
		Time:            r.Time,
		Source:          r.Source,
		AuthorURL:       r.AuthorURL,
		ProfilePhotoURL: r.ProfilePhotoURL,
	}
}
