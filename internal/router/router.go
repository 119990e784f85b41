package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/lesson-seat-storefront/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not belong to the storefront
// API on the provided Echo instance.  Currently it exposes only a
// health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterStorefront registers the storefront API under /v1.  The rate
// limiter, when not nil, applies to every storefront route; the
// response cache, when not nil, applies only to the read-only browse
// group.  Cart and checkout responses must never be cached because
// their state changes with every reservation.
func RegisterStorefront(e *echo.Echo, catalog *handler.CatalogHandler, cart *handler.CartHandler, checkout *handler.CheckoutHandler, limit, cache echo.MiddlewareFunc) {
	v1 := e.Group("/v1")
	if limit != nil {
		v1.Use(limit)
	}

	// Read-only browse endpoints share the response cache.
	browse := v1.Group("/lessons")
	if cache != nil {
		browse.Use(cache)
	}
	// Filtered and sorted lesson listing
	browse.GET("", catalog.GetLessons)
	// Free-text suggestions over subjects and cities
	browse.GET("/suggestions", catalog.GetSuggestions)

	// Cart operations mutate the session and bypass the cache.
	v1.GET("/cart", cart.GetCart)
	v1.POST("/cart/items", cart.AddItem)
	v1.DELETE("/cart/items", cart.RemoveItem)

	// Checkout submits the order and resynchronizes the catalog.
	v1.POST("/checkout", checkout.PostCheckout)
}
