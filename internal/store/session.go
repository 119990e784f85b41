package store

import (
	"sync"

	"github.com/iliyamo/lesson-seat-storefront/internal/model"
)

// Session owns the mutable state of one storefront session.  All
// mutation goes through its mutex so that paired updates (decrement a
// seat count and append a cart line, or the reverse) are applied as one
// atomic step relative to any concurrent request or in-flight network
// call.  The catalog is the local view of remote seat availability and
// is only ever replaced wholesale; between replacements the session
// keeps it consistent with the cart on its own.
type Session struct {
	mu       sync.Mutex
	catalog  []model.Subject
	cart     []model.CartLine
	customer model.Customer
}

// NewSession returns an empty session with no catalog, cart or
// customer details.
func NewSession() *Session {
	return &Session{}
}

// ReplaceCatalog swaps in a freshly fetched catalog.  The subjects are
// deep-copied so later mutation of the caller's slices cannot alias
// session state.  This is the ground-truth reset point: conservation of
// seats is measured from the moment of the last replacement.
func (s *Session) ReplaceCatalog(subjects []model.Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = copyCatalog(subjects)
}

// Subjects returns a deep copy of the current catalog.  Callers may
// filter, sort or serve the copy without holding any lock.
func (s *Session) Subjects() []model.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCatalog(s.catalog)
}

// SpacesFor reports the current local seat count for a subject and
// city.  The second return value is false when no such offering exists.
func (s *Session) SpacesFor(subject, city string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if off := s.findOffering(subject, city); off != nil {
		return off.Spaces, true
	}
	return 0, false
}

// SetCustomer stores the checkout contact details for the session.
func (s *Session) SetCustomer(c model.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = c
}

// Customer returns the currently stored checkout contact details.
func (s *Session) Customer() model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

// ClearCustomer resets the customer details to blank fields.
func (s *Session) ClearCustomer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = model.Customer{}
}

// ClearCart drops every cart line without touching the catalog.  It is
// only meant for the post-checkout reset, where the catalog is about to
// be replaced wholesale anyway; releasing seats back would double-count
// them against the refreshed catalog.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// findOffering returns a pointer into the live catalog for the given
// subject and city, or nil.  Callers must hold s.mu.
func (s *Session) findOffering(subject, city string) *model.Offering {
	for i := range s.catalog {
		if s.catalog[i].Subject != subject {
			continue
		}
		for j := range s.catalog[i].Offerings {
			if s.catalog[i].Offerings[j].City == city {
				return &s.catalog[i].Offerings[j]
			}
		}
	}
	return nil
}

// copyCatalog deep-copies a catalog so offering slices are never shared
// between the session and its callers.
func copyCatalog(subjects []model.Subject) []model.Subject {
	if subjects == nil {
		return nil
	}
	out := make([]model.Subject, len(subjects))
	for i, sub := range subjects {
		out[i] = model.Subject{
			Subject:   sub.Subject,
			Offerings: make([]model.Offering, len(sub.Offerings)),
		}
		copy(out[i].Offerings, sub.Offerings)
	}
	return out
}
