package search_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/lesson-seat-storefront/internal/model"
	"github.com/iliyamo/lesson-seat-storefront/internal/search"
)

func catalog() []model.Subject {
	return []model.Subject{
		{Subject: "Math", Offerings: []model.Offering{
			{City: "Miami", Price: decimal.NewFromInt(25), Spaces: 1},
			{City: "NYC", Price: decimal.NewFromInt(20), Spaces: 5},
		}},
		{Subject: "Art", Offerings: []model.Offering{
			{City: "LA", Price: decimal.NewFromInt(15), Spaces: 3},
		}},
		{Subject: "Drama", Offerings: []model.Offering{
			{City: "Malaga", Price: decimal.NewFromInt(10), Spaces: 2},
		}},
	}
}

func Test_Suggestions(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty_term_yields_nothing", term: "", want: []string{}},
		{name: "blank_term_yields_nothing", term: "   ", want: []string{}},
		{name: "subjects_before_cities", term: "ma", want: []string{"Math", "Drama", "Miami", "Malaga"}},
		{name: "case_insensitive", term: "MA", want: []string{"Math", "Drama", "Miami", "Malaga"}},
		{name: "city_only_match", term: "nyc", want: []string{"NYC"}},
		{name: "no_match", term: "zzz", want: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, search.Suggestions(catalog(), tc.term))
		})
	}
}

func Test_Suggestions_DeduplicatesAndCaps(t *testing.T) {
	// A subject named after its own city must appear once.
	subjects := []model.Subject{
		{Subject: "Miami", Offerings: []model.Offering{{City: "Miami"}}},
	}
	assert.Equal(t, []string{"Miami"}, search.Suggestions(subjects, "mia"))

	// Never more than six entries.
	big := make([]model.Subject, 10)
	for i := range big {
		big[i] = model.Subject{Subject: "Match " + string(rune('A'+i))}
	}
	assert.Len(t, search.Suggestions(big, "match"), 6)
}

func Test_Filter(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "blank_keeps_all", term: " ", want: []string{"Math", "Art", "Drama"}},
		{name: "by_subject_name", term: "art", want: []string{"Art"}},
		{name: "by_city", term: "nyc", want: []string{"Math"}},
		{name: "subject_or_city", term: "ma", want: []string{"Math", "Drama"}},
		{name: "no_match", term: "zzz", want: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := search.Filter(catalog(), tc.term)
			names := make([]string, 0, len(got))
			for _, s := range got {
				names = append(names, s.Subject)
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func Test_Sort(t *testing.T) {
	rows := func() []search.Row { return search.Flatten(catalog()) }

	tests := []struct {
		name string
		mode search.Mode
		dir  search.Direction
		want []string // expected city order, cities are unique in the fixture
	}{
		{name: "subject_asc", mode: search.BySubject, dir: search.Ascending, want: []string{"LA", "Malaga", "Miami", "NYC"}},
		{name: "subject_desc", mode: search.BySubject, dir: search.Descending, want: []string{"Miami", "NYC", "Malaga", "LA"}},
		{name: "city_asc", mode: search.ByCity, dir: search.Ascending, want: []string{"LA", "Malaga", "Miami", "NYC"}},
		{name: "price_asc", mode: search.ByPrice, dir: search.Ascending, want: []string{"Malaga", "LA", "NYC", "Miami"}},
		{name: "price_desc", mode: search.ByPrice, dir: search.Descending, want: []string{"Miami", "NYC", "LA", "Malaga"}},
		{name: "spaces_asc", mode: search.BySpaces, dir: search.Ascending, want: []string{"Miami", "Malaga", "LA", "NYC"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rs := rows()
			search.Sort(rs, tc.mode, tc.dir)
			cities := make([]string, len(rs))
			for i, r := range rs {
				cities[i] = r.City
			}
			assert.Equal(t, tc.want, cities)
		})
	}
}

func Test_Sort_StableForEqualKeys(t *testing.T) {
	rs := search.Flatten(catalog())
	search.Sort(rs, search.BySubject, search.Ascending)
	// Math rows keep their catalog order (Miami before NYC).
	require.Equal(t, "Math", rs[2].Subject)
	require.Equal(t, "Math", rs[3].Subject)
	assert.Equal(t, "Miami", rs[2].City)
	assert.Equal(t, "NYC", rs[3].City)
}

func Test_ParseModeAndDirection(t *testing.T) {
	mode, ok := search.ParseMode("")
	assert.True(t, ok)
	assert.Equal(t, search.BySubject, mode)

	mode, ok = search.ParseMode("PRICE")
	assert.True(t, ok)
	assert.Equal(t, search.ByPrice, mode)

	_, ok = search.ParseMode("bogus")
	assert.False(t, ok)

	dir, ok := search.ParseDirection("desc")
	assert.True(t, ok)
	assert.Equal(t, search.Descending, dir)

	_, ok = search.ParseDirection("sideways")
	assert.False(t, ok)
}
