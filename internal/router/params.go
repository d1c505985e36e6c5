package router

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/brew-directory/internal/apperr"
)

// queryInt returns def when the parameter is absent.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.NewValidationWrap(fmt.Sprintf("%s must be an integer", name), err)
	}
	return v, nil
}

// queryFloat returns def when the parameter is absent. NaN and infinities are rejected.
func queryFloat(c echo.Context, name string, def float64) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperr.NewValidationWrap(fmt.Sprintf("%s must be a number", name), err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperr.NewValidation(fmt.Sprintf("%s must be a finite number", name))
	}
	return v, nil
}

func requiredFloat(c echo.Context, name string) (float64, error) {
	if c.QueryParam(name) == "" {
		return 0, apperr.NewValidation(fmt.Sprintf("%s is required", name))
	}
	return queryFloat(c, name, 0)
}

// pathParam returns the unescaped path parameter, or the raw value when it is not valid escaping.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
