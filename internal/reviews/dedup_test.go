package reviews

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
)

func strPtr(s string) *string { return &s }
func i64Ptr(i int64) *int64   { return &i }

func review(subject uuid.UUID, author, text string, ts int64) domain.Review {
	return domain.Review{SubjectID: subject, AuthorName: strPtr(author), Text: strPtr(text), Time: i64Ptr(ts)}
}

func TestDedupe_CaseAndWhitespaceInsensitive(t *testing.T) {
	subject := uuid.New()
	body := strings.Repeat("Great sours and a friendly staff. ", 4)

	in := []domain.Review{
		review(subject, "Jamie Doe", body+"Will return!", 1700000000),
		review(subject, "  jamie doe ", strings.ToUpper(body)+"Different tail beyond the prefix", 1700000000),
	}

	out := Dedupe(in)
	require.Len(t, out, 1)
	assert.Equal(t, "Jamie Doe", *out[0].AuthorName, "first occurrence wins")
}

func TestDedupe_DistinctFieldsSurvive(t *testing.T) {
	subject := uuid.New()
	tests := []struct {
		name  string
		other domain.Review
	}{
		{"different time", review(subject, "Sam", "Nice", 2)},
		{"different author", review(subject, "Alex", "Nice", 1)},
		{"different text", review(subject, "Sam", "Not nice", 1)},
		{"different subject", review(uuid.New(), "Sam", "Nice", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Dedupe([]domain.Review{review(subject, "Sam", "Nice", 1), tt.other})
			assert.Len(t, out, 2)
		})
	}
}

func TestDedupe_MissingFieldsFingerprintAsZero(t *testing.T) {
	subject := uuid.New()
	in := []domain.Review{
		{SubjectID: subject},
		{SubjectID: subject, Time: i64Ptr(0), AuthorName: strPtr(" "), Text: strPtr("")},
	}

	assert.Len(t, Dedupe(in), 1)
}

func TestDedupe_OutputIsNMinusD(t *testing.T) {
	subject := uuid.New()
	var in []domain.Review
	duplicates := 0
	for i := 0; i < 30; i++ {
		in = append(in, review(subject, fmt.Sprintf("Author %d", i), "Body", int64(1000-i)))
		if i%3 == 0 {
			dup := review(subject, fmt.Sprintf("AUTHOR %d", i), "body", int64(1000-i))
			dup.Source = strPtr("second-run")
			in = append(in, dup)
			duplicates++
		}
	}

	out := Dedupe(in)

	assert.Len(t, out, len(in)-duplicates)
	for _, r := range out {
		assert.Nil(t, r.Source, "kept record must be the first in input order")
	}
}

func TestDedupe_EmptyInput(t *testing.T) {
	out := Dedupe(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestPrefix_CountsRunes(t *testing.T) {
	assert.Equal(t, "ñá", prefix("ñáb", 2))
	assert.Equal(t, "ab", prefix("ab", 100))
}
