// Package handler exposes the HTTP handlers of the storefront.  This
// file defines the catalog browse API: the filtered and sorted lesson
// listing and the free-text suggestion endpoint.  Both are read-only
// views over the session's catalog copy and never mutate state.
package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/lesson-seat-storefront/internal/search"
	"github.com/iliyamo/lesson-seat-storefront/internal/store"
)

// CatalogHandler serves the browse endpoints from the session's
// catalog.
type CatalogHandler struct {
	Session *store.Session // session owning the catalog copy served here
}

// NewCatalogHandler constructs a CatalogHandler and panics if the
// session is nil.
func NewCatalogHandler(session *store.Session) *CatalogHandler {
	if session == nil {
		panic("nil session passed to NewCatalogHandler")
	}
	return &CatalogHandler{Session: session}
}

// GetLessons handles GET /v1/lessons.  The optional ?q= term filters
// subjects whose name or any city matches, case-insensitively.  The
// flattened rows are then sorted per ?sort= (subject, city, price,
// spaces) and ?dir= (asc, desc); unknown values are rejected with 400.
func (h *CatalogHandler) GetLessons(c echo.Context) error {
	term := strings.TrimSpace(c.QueryParam("q"))
	mode, ok := search.ParseMode(c.QueryParam("sort"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sort mode"})
	}
	dir, ok := search.ParseDirection(c.QueryParam("dir"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sort direction"})
	}

	subjects := h.Session.Subjects()
	rows := search.Flatten(search.Filter(subjects, term))
	search.Sort(rows, mode, dir)

	return c.JSON(http.StatusOK, echo.Map{
		"data":  rows,
		"total": len(rows),
	})
}

// GetSuggestions handles GET /v1/lessons/suggestions.  It returns at
// most six deduplicated subject and city names matching ?q=; an empty
// term yields an empty list, never the full set.
func (h *CatalogHandler) GetSuggestions(c echo.Context) error {
	term := c.QueryParam("q")
	return c.JSON(http.StatusOK, echo.Map{
		"suggestions": search.Suggestions(h.Session.Subjects(), term),
	})
}
