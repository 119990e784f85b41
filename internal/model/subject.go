package model

import "github.com/shopspring/decimal"

// The lessons API encodes prices and totals as bare JSON numbers, so the
// decimal package must not wrap them in quotes when marshalling.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Offering describes the seats offered for a subject in one city.  An
// offering is uniquely identified within its subject by the city name.
//
// Fields:
//  City   – city in which the lessons take place.
//  Price  – price per seat; never negative.
//  Spaces – seats still available; never negative.
type Offering struct {
	City   string          `json:"city"`
	Price  decimal.Decimal `json:"price"`
	Spaces int             `json:"spaces"`
}

// Subject groups the per-city offerings for one subject.  Subjects are
// unique by name within the catalog and their offerings are unique by
// city.  The whole catalog is replaced wholesale on every refresh from
// the lessons API; it is never merged incrementally.
type Subject struct {
	Subject   string     `json:"subject"`
	Offerings []Offering `json:"offerings"`
}
