package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/lesson-seat-storefront/internal/store"
)

// CartHandler serves the cart endpoints.  Every mutation goes through
// the session's reservation engine, which keeps the catalog seat counts
// and the cart lines complementary at all times.
type CartHandler struct {
	Session *store.Session // session owning cart and catalog state
}

// NewCartHandler constructs a CartHandler and panics if the session is
// nil.
func NewCartHandler(session *store.Session) *CartHandler {
	if session == nil {
		panic("nil session passed to NewCartHandler")
	}
	return &CartHandler{Session: session}
}

// GetCart handles GET /v1/cart.  It returns the grouped view (one
// entry per subject and city, in order of first appearance), the
// number of individual seats and the running total.
func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"items": h.Session.Grouped(),
		"count": h.Session.Count(),
		"total": h.Session.Total(),
	})
}

// AddItem handles POST /v1/cart/items.  The request body must contain
// a JSON object with non-blank "subject" and "city".  On success one
// seat is reserved and the snapshotted cart line is returned with the
// seats remaining for that offering.  An exhausted offering yields 409
// and an unknown one 404, both with no state change.
func (h *CartHandler) AddItem(c echo.Context) error {
	var body struct {
		Subject string `json:"subject"`
		City    string `json:"city"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	subject := strings.TrimSpace(body.Subject)
	city := strings.TrimSpace(body.City)
	if subject == "" || city == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "subject and city are required"})
	}

	line, err := h.Session.Reserve(subject, city)
	if err != nil {
		if errors.Is(err, store.ErrOfferingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "offering not found"})
		}
		if errors.Is(err, store.ErrOutOfStock) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "no seats left for this offering"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
	}

	spaces, _ := h.Session.SpacesFor(subject, city)
	return c.JSON(http.StatusCreated, echo.Map{
		"item":   line,
		"spaces": spaces,
		"count":  h.Session.Count(),
	})
}

// RemoveItem handles DELETE /v1/cart/items.  The offering is named by
// the ?subject= and ?city= query parameters.  By default the first
// matching cart line is released back to the catalog; with ?all=true
// every matching line is released.  Releasing from an empty group
// yields 404.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	subject := strings.TrimSpace(c.QueryParam("subject"))
	city := strings.TrimSpace(c.QueryParam("city"))
	if subject == "" || city == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "subject and city are required"})
	}

	if strings.EqualFold(c.QueryParam("all"), "true") {
		released := h.Session.ReleaseAll(subject, city)
		if released == 0 {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no matching cart lines"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"released": released,
			"count":    h.Session.Count(),
		})
	}

	if !h.Session.ReleaseOne(subject, city) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no matching cart lines"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"released": 1,
		"count":    h.Session.Count(),
	})
}
