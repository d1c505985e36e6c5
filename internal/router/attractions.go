package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/brew-directory/internal/apperr"
	"github.com/DjordjeVuckovic/brew-directory/internal/directory"
	"github.com/DjordjeVuckovic/brew-directory/internal/proximity"
)

type AttractionRouter struct {
	e   *echo.Echo
	dir *directory.Service
}

func NewAttractionRouter(e *echo.Echo, dir *directory.Service) *AttractionRouter {
	return &AttractionRouter{
		e:   e,
		dir: dir,
	}
}

func (r *AttractionRouter) Bind() {
	g := r.e.Group("/attractions")
	g.GET("/nearby", r.nearbyHandler)
	g.GET("/city/:city", r.byCityHandler)
	g.GET("/type/:type", r.byTypeHandler)
	g.GET("/slug/:slug", r.bySlugHandler)
	g.GET("/place/:placeId", r.byPlaceIDHandler)
}

// nearbyHandler godoc
// @Summary Attractions near a point
// @Description Entries within radius_km of (lat, lon), nearest first
// @Tags attractions
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius_km query number false "Search radius in kilometres" default(5)
// @Param limit query int false "Maximum results" default(10)
// @Param type query string false "Entry type"
// @Success 200 {array} domain.Entry
// @Failure 400 {object} dto.ErrorResponse
// @Router /attractions/nearby [get]
func (r *AttractionRouter) nearbyHandler(c echo.Context) error {
	lat, err := requiredFloat(c, "lat")
	if err != nil {
		return err
	}
	lon, err := requiredFloat(c, "lon")
	if err != nil {
		return err
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return apperr.NewValidation("lat must be within [-90, 90] and lon within [-180, 180]")
	}
	radiusKm, err := queryFloat(c, "radius_km", proximity.DefaultRadiusKm)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", proximity.DefaultLimit)
	if err != nil {
		return err
	}

	entries := r.dir.AttractionsNearBrewery(c.Request().Context(), lat, lon, radiusKm, limit, c.QueryParam("type"))
	return c.JSON(http.StatusOK, entries)
}

// byCityHandler godoc
// @Summary Attractions in a city
// @Tags attractions
// @Produce json
// @Param city path string true "City, exact match"
// @Param limit query int false "Maximum results" default(50)
// @Success 200 {array} domain.Entry
// @Failure 400 {object} dto.ErrorResponse
// @Router /attractions/city/{city} [get]
func (r *AttractionRouter) byCityHandler(c echo.Context) error {
	limit, err := queryInt(c, "limit", directory.DefaultListLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r.dir.AttractionsByCity(c.Request().Context(), pathParam(c, "city"), limit))
}

// byTypeHandler godoc
// @Summary Attractions of a type
// @Tags attractions
// @Produce json
// @Param type path string true "Entry type, exact match"
// @Param limit query int false "Maximum results" default(50)
// @Success 200 {array} domain.Entry
// @Failure 400 {object} dto.ErrorResponse
// @Router /attractions/type/{type} [get]
func (r *AttractionRouter) byTypeHandler(c echo.Context) error {
	limit, err := queryInt(c, "limit", directory.DefaultListLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r.dir.AttractionsByType(c.Request().Context(), pathParam(c, "type"), limit))
}

// bySlugHandler godoc
// @Summary Attraction by slug
// @Tags attractions
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} domain.Entry
// @Failure 404 {object} dto.ErrorResponse
// @Router /attractions/slug/{slug} [get]
func (r *AttractionRouter) bySlugHandler(c echo.Context) error {
	entry := r.dir.AttractionBySlug(c.Request().Context(), pathParam(c, "slug"))
	if entry == nil {
		return echo.NewHTTPError(http.StatusNotFound, "attraction not found")
	}
	return c.JSON(http.StatusOK, entry)
}

// byPlaceIDHandler godoc
// @Summary Attraction by external place id
// @Tags attractions
// @Produce json
// @Param placeId path string true "Place id"
// @Success 200 {object} domain.Entry
// @Failure 404 {object} dto.ErrorResponse
// @Router /attractions/place/{placeId} [get]
func (r *AttractionRouter) byPlaceIDHandler(c echo.Context) error {
	entry := r.dir.AttractionByPlaceID(c.Request().Context(), pathParam(c, "placeId"))
	if entry == nil {
		return echo.NewHTTPError(http.StatusNotFound, "attraction not found")
	}
	return c.JSON(http.StatusOK, entry)
}
