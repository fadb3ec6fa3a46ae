package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/JamesBMiddleton/nutritrack/pkg/foods"
)

// Result is one matching food.
type Result struct {
	ID                int     `json:"id" yaml:"id"`
	Description       string  `json:"description" yaml:"description"`
	Completeness      float64 `json:"completeness" yaml:"completeness"`
	CompletenessLabel string  `json:"completeness_label" yaml:"completeness_label"`
}

type Options struct {
	// Limit caps the number of results. 0 means no limit.
	Limit int
}

// Search returns the foods whose description contains every whitespace
// separated term of query, case-sensitively and in any order. Results are
// sorted by completeness, most complete first; ties keep table order.
func Search(query string, table *foods.Table) []Result {
	return SearchWithOptions(query, table, Options{})
}

func SearchWithOptions(query string, table *foods.Table, opts Options) []Result {
	terms := strings.Fields(query)

	results := []Result{}
	table.Each(func(f foods.Food) {
		if !matches(f.Description, terms) {
			return
		}
		results = append(results, Result{
			ID:                f.ID,
			Description:       f.Description,
			Completeness:      f.Completeness,
			CompletenessLabel: CompletenessLabel(f.Completeness),
		})
	})

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Completeness > results[j].Completeness
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}

func matches(description string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(description, term) {
			return false
		}
	}
	return true
}

// CompletenessLabel formats a completeness percentage, e.g. "93.75%".
func CompletenessLabel(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64) + "%"
}
