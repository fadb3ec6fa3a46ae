package search

import (
	"reflect"
	"strings"
	"testing"

	"github.com/JamesBMiddleton/nutritrack/pkg/foods"
)

func testTable() *foods.Table {
	return foods.NewTable([]foods.Food{
		{Description: "Milk, whole", Completeness: 60},
		{Description: "Cheese, cheddar", Completeness: 75},
		{Description: "Milk, skimmed", Completeness: 75},
		{Description: "Egg, whole, raw", Completeness: 90},
		{Description: "Chocolate milk drink", Completeness: 40},
	})
}

func ids(results []Result) []int {
	out := make([]int, 0, len(results))
	for _, r := range results {
		out = append(out, r.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	table := testTable()

	cases := []struct {
		name  string
		query string
		want  []int
	}{
		{"single term", "Milk", []int{2, 0}},
		{"case sensitive", "milk", []int{4}},
		{"terms in any order", "whole Milk", []int{0}},
		{"all terms required", "Milk cheddar", []int{}},
		{"substring inside word", "hed", []int{1}},
		{"no match", "Tofu", []int{}},
		{"empty matches all", "", []int{3, 1, 2, 0, 4}},
		{"whitespace only matches all", "   ", []int{3, 1, 2, 0, 4}},
		{"repeated spaces", "Milk   whole", []int{0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ids(Search(c.query, table))
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Search(%q) = %v, want %v", c.query, got, c.want)
			}
		})
	}
}

func TestSearchResultsContainEveryTerm(t *testing.T) {
	table := testTable()
	for _, q := range []string{"Milk", "whole", "e", "Milk whole", "a e i", ","} {
		for _, r := range Search(q, table) {
			for _, term := range strings.Fields(q) {
				if !strings.Contains(r.Description, term) {
					t.Errorf("Search(%q) returned %q which lacks %q", q, r.Description, term)
				}
			}
		}
	}
}

func TestSearchSortedByCompleteness(t *testing.T) {
	results := Search("", testTable())
	for i := 1; i < len(results); i++ {
		if results[i-1].Completeness < results[i].Completeness {
			t.Fatalf("results not sorted at %d: %v", i, results)
		}
	}
}

func TestSearchStableTies(t *testing.T) {
	table := foods.NewTable([]foods.Food{
		{Description: "Apple, raw, first", Completeness: 50},
		{Description: "Apple, raw, second", Completeness: 50},
		{Description: "Apple, dried", Completeness: 10},
		{Description: "Apple, raw, third", Completeness: 50},
	})

	got := ids(Search("Apple raw", table))
	if !reflect.DeepEqual(got, []int{0, 1, 3}) {
		t.Fatalf("tie order = %v, want [0 1 3]", got)
	}
}

func TestSearchLimit(t *testing.T) {
	got := SearchWithOptions("", testTable(), Options{Limit: 2})
	if !reflect.DeepEqual(ids(got), []int{3, 1}) {
		t.Fatalf("limited results = %v, want [3 1]", ids(got))
	}
}

func TestCompletenessLabel(t *testing.T) {
	cases := map[float64]string{
		93.75: "93.75%",
		100:   "100%",
		4.17:  "4.17%",
		0:     "0%",
	}
	for in, want := range cases {
		if got := CompletenessLabel(in); got != want {
			t.Errorf("CompletenessLabel(%v) = %q, want %q", in, got, want)
		}
	}
}
