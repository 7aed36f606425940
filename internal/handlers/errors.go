package handlers

import (
	"errors"
	"net/http"

	"github.com/anik404/go-blog/backend/internal/repositories"
	"github.com/anik404/go-blog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// httpError maps service error kinds to HTTP statuses. Anything unknown
// surfaces as a generic 500 without leaking internals.
func httpError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		return echo.NewHTTPError(http.StatusBadRequest, vErr.Message)
	}

	var nfErr *services.NotFoundError
	if errors.As(err, &nfErr) {
		return echo.NewHTTPError(http.StatusNotFound, nfErr.Error())
	}

	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrEmailNotFound), errors.Is(err, services.ErrBadPassword):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, repositories.ErrInvalidID):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
}
