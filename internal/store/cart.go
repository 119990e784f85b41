package store

import (
	"github.com/shopspring/decimal"

	"github.com/iliyamo/lesson-seat-storefront/internal/model"
)

// Lines returns a copy of the cart in reservation order.
func (s *Session) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// Count returns the number of individual reserved seats, not the
// number of distinct groups.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cart)
}

// Grouped derives one entry per distinct (subject, city) pair present
// in the cart, preserving the order in which each pair first appeared.
// The view is recomputed on every call and never stored.
func (s *Session) Grouped() []model.GroupedCartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	grouped := make([]model.GroupedCartLine, 0, len(s.cart))
	index := make(map[string]int, len(s.cart))
	for _, line := range s.cart {
		key := line.Subject + "\x00" + line.City
		if i, ok := index[key]; ok {
			grouped[i].Quantity++
			continue
		}
		index[key] = len(grouped)
		grouped = append(grouped, model.GroupedCartLine{
			Subject:  line.Subject,
			City:     line.City,
			Price:    line.Price,
			Quantity: 1,
		})
	}
	return grouped
}

// Total sums the prices of the individual cart lines.  It deliberately
// does not multiply group prices by quantities; both computations must
// agree for valid data, but summing the flat lines avoids compounding
// any rounding applied per group.
func (s *Session) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, line := range s.cart {
		total = total.Add(line.Price)
	}
	return total
}
