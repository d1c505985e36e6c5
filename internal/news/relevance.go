package news

import (
	"strings"
	"unicode"

	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
)

// Relevance scores text against a name: 1 when the whole name appears, otherwise the
// share of the name's significant words that appear.
func Relevance(name, text string) float64 {
	n := strings.Join(words(name), " ")
	if n == "" {
		return 0
	}
	t := " " + strings.Join(words(text), " ") + " "
	if strings.Contains(t, " "+n+" ") {
		return 1
	}

	var significant, found int
	for _, w := range words(name) {
		if len(w) < 3 {
			continue
		}
		significant++
		if strings.Contains(t, " "+w+" ") {
			found++
		}
	}
	if significant == 0 {
		return 0
	}
	return domain.ClampRelevance(float64(found) / float64(significant))
}

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
