package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/DjordjeVuckovic/brew-directory/internal/apperr"
	"github.com/DjordjeVuckovic/brew-directory/internal/directory"
	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/dto"
	"github.com/DjordjeVuckovic/brew-directory/internal/news"
	"github.com/DjordjeVuckovic/brew-directory/internal/proximity"
	"github.com/DjordjeVuckovic/brew-directory/internal/reviews"
)

const maxNewsLimit = 50

type BreweryRouter struct {
	e       *echo.Echo
	dir     *directory.Service
	reviews *reviews.Service
	news    *news.Service
}

func NewBreweryRouter(e *echo.Echo, dir *directory.Service, rs *reviews.Service, ns *news.Service) *BreweryRouter {
	return &BreweryRouter{
		e:       e,
		dir:     dir,
		reviews: rs,
		news:    ns,
	}
}

func (r *BreweryRouter) Bind() {
	g := r.e.Group("/breweries")
	g.GET("/:id/reviews", r.reviewsHandler)
	g.GET("/:id/news", r.newsHandler)
	g.GET("/:id/detail", r.detailHandler)
}

// reviewsHandler godoc
// @Summary Deduplicated reviews of a brewery
// @Tags breweries
// @Produce json
// @Param id path string true "Brewery id"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} reviews.Page
// @Failure 400 {object} dto.ErrorResponse
// @Router /breweries/{id}/reviews [get]
func (r *BreweryRouter) reviewsHandler(c echo.Context) error {
	id, err := subjectID(c)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", reviews.DefaultPageLimit)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r.reviews.Page(c.Request().Context(), id, limit, offset))
}

// newsHandler godoc
// @Summary Most relevant news about a brewery
// @Tags breweries
// @Produce json
// @Param id path string true "Brewery id"
// @Param limit query int false "Maximum articles" default(5)
// @Success 200 {array} domain.NewsArticle
// @Failure 400 {object} dto.ErrorResponse
// @Router /breweries/{id}/news [get]
func (r *BreweryRouter) newsHandler(c echo.Context) error {
	id, err := subjectID(c)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", news.DefaultListLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r.news.Latest(c.Request().Context(), id, min(limit, maxNewsLimit)))
}

// detailHandler godoc
// @Summary Brewery with nearby attractions, reviews and news
// @Description Looks the brewery up by id or slug, then loads the rest concurrently
// @Tags breweries
// @Produce json
// @Param id path string true "Brewery id or slug"
// @Param radius_km query number false "Nearby search radius in kilometres" default(5)
// @Success 200 {object} dto.BreweryDetail
// @Failure 404 {object} dto.ErrorResponse
// @Router /breweries/{id}/detail [get]
func (r *BreweryRouter) detailHandler(c echo.Context) error {
	radiusKm, err := queryFloat(c, "radius_km", proximity.DefaultRadiusKm)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	ref := pathParam(c, "id")

	var brewery *domain.Entry
	if _, err := uuid.Parse(ref); err == nil {
		brewery = r.dir.AttractionByID(ctx, ref)
	} else {
		brewery = r.dir.AttractionBySlug(ctx, ref)
	}
	if brewery == nil {
		return echo.NewHTTPError(http.StatusNotFound, "brewery not found")
	}

	detail := dto.BreweryDetail{
		Brewery: *brewery,
		Nearby:  []domain.Entry{},
	}

	g, gctx := errgroup.WithContext(ctx)
	if brewery.HasLocation() {
		g.Go(func() error {
			// one extra so the brewery itself can be dropped without shortening the list
			nearby := r.dir.AttractionsNearBrewery(gctx, *brewery.Lat, *brewery.Lon, radiusKm, proximity.DefaultLimit+1, "")
			nearby = withoutEntry(nearby, brewery.ID)
			detail.Nearby = nearby[:min(len(nearby), proximity.DefaultLimit)]
			return nil
		})
	}
	g.Go(func() error {
		detail.Reviews = r.reviews.Page(gctx, brewery.ID, reviews.DefaultPageLimit, 0)
		return nil
	})
	g.Go(func() error {
		detail.News = r.news.Latest(gctx, brewery.ID, news.DefaultListLimit)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, detail)
}

func subjectID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.NewValidationWrap("id must be a UUID", err)
	}
	return id, nil
}

// withoutEntry drops the brewery itself from its own nearby list.
func withoutEntry(entries []domain.Entry, id uuid.UUID) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
