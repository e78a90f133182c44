// Package search provides interactive fuzzy lookup over a discovered
// schema, for the report builder's field picker. Unlike the coverage
// matcher this is subsequence matching tuned for as-you-type input, not a
// scored containment heuristic.
package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/reportsmith/schemamatch/internal/schema"
)

// Match is one ranked search hit.
type Match struct {
	// Column is the qualified "table.column" string.
	Column string
	// Positions are the matched byte offsets within Column, for highlighting.
	Positions []int
	Score     int
}

// Columns ranks the schema's columns against the query and returns at most
// limit hits, best first. An empty query returns nothing.
func Columns(s *schema.DatabaseSchema, query string, limit int) []Match {
	if s == nil || query == "" || limit <= 0 {
		return nil
	}

	targets := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		targets[i] = col.Qualified()
	}

	results := fuzzy.Find(query, targets)
	if len(results) > limit {
		results = results[:limit]
	}

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Column:    targets[r.Index],
			Positions: r.MatchedIndexes,
			Score:     r.Score,
		}
	}
	return matches
}

// Tables ranks the schema's table names against the query.
func Tables(s *schema.DatabaseSchema, query string, limit int) []Match {
	if s == nil || query == "" || limit <= 0 {
		return nil
	}

	results := fuzzy.Find(query, s.Tables)
	if len(results) > limit {
		results = results[:limit]
	}

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Column:    s.Tables[r.Index],
			Positions: r.MatchedIndexes,
			Score:     r.Score,
		}
	}
	return matches
}
