package store

import "github.com/iliyamo/lesson-seat-storefront/internal/model"

// Reserve books one seat for the given subject and city.  It fails with
// ErrOfferingNotFound when the catalog has no such offering and with
// ErrOutOfStock when no seats remain; in both cases nothing changes.
// On success the offering's seat count is decremented by exactly one
// and a cart line snapshotting the current price is appended, as a
// single atomic step.  The returned line is the appended snapshot.
func (s *Session) Reserve(subject, city string) (model.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	off := s.findOffering(subject, city)
	if off == nil {
		return model.CartLine{}, ErrOfferingNotFound
	}
	if off.Spaces <= 0 {
		return model.CartLine{}, ErrOutOfStock
	}
	off.Spaces--
	line := model.CartLine{Subject: subject, City: city, Price: off.Price}
	s.cart = append(s.cart, line)
	return line, nil
}

// ReleaseOne removes the first cart line matching the subject and city
// and returns its seat to the offering.  It reports false, changing
// nothing, when no matching line exists.
func (s *Session) ReleaseOne(subject, city string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, line := range s.cart {
		if line.Subject == subject && line.City == city {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			if off := s.findOffering(subject, city); off != nil {
				off.Spaces++
			}
			return true
		}
	}
	return false
}

// ReleaseAll removes every cart line matching the subject and city,
// returns that many seats to the offering and reports the count
// removed.  The count is zero when no lines match.
func (s *Session) ReleaseAll(subject, city string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cart[:0]
	released := 0
	for _, line := range s.cart {
		if line.Subject == subject && line.City == city {
			released++
			continue
		}
		kept = append(kept, line)
	}
	s.cart = kept
	if released > 0 {
		if off := s.findOffering(subject, city); off != nil {
			off.Spaces += released
		}
	}
	return released
}
