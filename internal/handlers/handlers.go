package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/breadsapp/breads/backend/internal/models"
	"github.com/breadsapp/breads/backend/internal/repositories"
	"github.com/breadsapp/breads/backend/pkg/storage"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext extracts the authenticated user's ID from the JWT
// claims placed in context by the auth middleware. Returns 0 when absent.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// httpError maps the domain error taxonomy onto HTTP statuses.
func httpError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, repositories.ErrSelfFollow), errors.Is(err, storage.ErrInvalidFileType):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// pageParams reads page/page_size query parameters with defaults.
func pageParams(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	pageSize, _ = strconv.Atoi(c.QueryParam("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

// pageMeta builds the pagination envelope for list responses.
func pageMeta(page, pageSize int, total int64) echo.Map {
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return echo.Map{
		"currentPage":     page,
		"totalPages":      totalPages,
		"totalItems":      total,
		"itemsPerPage":    pageSize,
		"hasNextPage":     page < totalPages,
		"hasPreviousPage": page > 1,
	}
}
