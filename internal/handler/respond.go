package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "github.com/icemanhv/forum/internal/errors"
)

// httpError maps a domain error onto the echo error the client sees.
func httpError(err error) *echo.HTTPError {
	mapped := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
}
