package dto

import (
	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/reviews"
)

// BreweryDetail is everything the brewery page shows, fetched in one request.
type BreweryDetail struct {
	Brewery domain.Entry         `json:"brewery"`
	Nearby  []domain.Entry       `json:"nearby"`
	Reviews reviews.Page         `json:"reviews"`
	News    []domain.NewsArticle `json:"news"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"attraction not found"`
}
