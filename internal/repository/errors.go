// Package repository contains remote data access logic separated from
// HTTP handlers.  The storefront owns no database; everything it knows
// about inventory comes from the lessons API, so the repository layer
// here is an HTTP client.  These sentinel values allow higher layers to
// distinguish between different failure scenarios.  For example,
// ErrOrderRejected indicates that the remote store refused the order
// and the whole checkout must abort, while ErrCatalogUnavailable
// signals that a catalog fetch failed and the local view is stale or
// empty.
package repository

import "errors"

// ErrCatalogUnavailable is returned when the lessons API answers a
// catalog fetch with a non-success status.  The caller keeps its
// previous (possibly empty) catalog and reports the failure.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// ErrOrderRejected is returned when the lessons API answers an order
// submission with a non-success status.  Checkout must abort with no
// local mutation.
var ErrOrderRejected = errors.New("order rejected")

// ErrUpdateRejected is returned when the lessons API answers a seat
// count update with a non-success status.  Callers run these updates
// fire-and-forget and only count the failure.
var ErrUpdateRejected = errors.New("seat update rejected")
