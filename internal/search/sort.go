package search

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/iliyamo/lesson-seat-storefront/internal/model"
)

// Row is one flattened catalog entry, the shape served by the lessons
// listing endpoint and the unit the sort operates on.
type Row struct {
	Subject string          `json:"subject"`
	City    string          `json:"city"`
	Price   decimal.Decimal `json:"price"`
	Spaces  int             `json:"spaces"`
}

// Mode enumerates the supported sort keys.  Each mode maps to one
// explicit key comparison in compare; adding a mode without extending
// the switch there is a bug.
type Mode int

const (
	BySubject Mode = iota
	ByCity
	ByPrice
	BySpaces
)

// Direction enumerates the sort directions.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ParseMode maps a query-string value onto a Mode.  The zero mode
// (subject) is the default for an empty value; unknown values are
// rejected.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "subject":
		return BySubject, true
	case "city":
		return ByCity, true
	case "price":
		return ByPrice, true
	case "spaces":
		return BySpaces, true
	}
	return BySubject, false
}

// ParseDirection maps a query-string value onto a Direction, defaulting
// to ascending for an empty value.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, true
	case "desc", "descending":
		return Descending, true
	}
	return Ascending, false
}

// Flatten expands a catalog into one row per offering, preserving
// catalog order.
func Flatten(subjects []model.Subject) []Row {
	rows := make([]Row, 0, len(subjects))
	for _, sub := range subjects {
		for _, off := range sub.Offerings {
			rows = append(rows, Row{
				Subject: sub.Subject,
				City:    off.City,
				Price:   off.Price,
				Spaces:  off.Spaces,
			})
		}
	}
	return rows
}

// Sort orders rows in place by the given mode and direction.  String
// keys are compared with a locale-aware case-insensitive collator, the
// numeric keys directly.  The sort is stable so equal keys keep their
// catalog order.
func Sort(rows []Row, mode Mode, dir Direction) {
	coll := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(rows, func(i, j int) bool {
		cmp := compare(coll, rows[i], rows[j], mode)
		if dir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

// compare returns a negative, zero or positive value ordering a before,
// equal to or after b under the given mode.
func compare(coll *collate.Collator, a, b Row, mode Mode) int {
	switch mode {
	case BySubject:
		return coll.CompareString(a.Subject, b.Subject)
	case ByCity:
		return coll.CompareString(a.City, b.City)
	case ByPrice:
		return a.Price.Cmp(b.Price)
	case BySpaces:
		switch {
		case a.Spaces < b.Spaces:
			return -1
		case a.Spaces > b.Spaces:
			return 1
		}
		return 0
	}
	return 0
}
