// Package store holds the in-memory session state: the catalog of
// subjects fetched from the lessons API, the cart of reserved seats and
// the customer details entered for checkout.  These sentinel values let
// handlers distinguish the failure scenarios of a reservation.  For
// example, ErrOutOfStock indicates that the requested offering has no
// seats left and must be surfaced to the user, while
// ErrOfferingNotFound signals a request for an offering that does not
// exist in the current catalog, which should not occur in the normal
// flow and is treated as a logic error.
package store

import "errors"

// ErrOfferingNotFound is returned when a reservation names a subject
// and city pair absent from the catalog.  Handlers should translate
// this into an HTTP 404 response.
var ErrOfferingNotFound = errors.New("offering not found")

// ErrOutOfStock is returned when a reservation is attempted against an
// offering with no remaining seats.  No state is changed.  Handlers
// should translate this into an HTTP 409 response.
var ErrOutOfStock = errors.New("out of stock")
