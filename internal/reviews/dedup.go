// Package reviews serves stored reviews with read-time deduplication.
//
// Ingestion appends reviews without checking for duplicates, so repeated runs store the
// same review several times. Dedupe collapses them on the way out.
package reviews

import (
	"strings"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
)

const fingerprintTextRunes = 100

// Fingerprint identifies a review regardless of its storage copy.
type Fingerprint struct {
	SubjectID uuid.UUID
	Time      int64
	Author    string
	Text      string
}

func FingerprintOf(r domain.Review) Fingerprint {
	fp := Fingerprint{SubjectID: r.SubjectID}
	if r.Time != nil {
		fp.Time = *r.Time
	}
	if r.AuthorName != nil {
		fp.Author = normalize(*r.AuthorName)
	}
	if r.Text != nil {
		fp.Text = normalize(prefix(*r.Text, fingerprintTextRunes))
	}
	return fp
}

// Dedupe keeps the first review of every fingerprint, preserving input order.
// Input is expected newest first, so the newest copy survives.
func Dedupe(reviews []domain.Review) []domain.Review {
	seen := make(map[Fingerprint]struct{}, len(reviews))
	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		fp := FingerprintOf(r)
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, r)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
