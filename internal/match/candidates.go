package match

import (
	"sort"

	"github.com/reportsmith/schemamatch/internal/schema"
)

// Candidate pairs a column with its score against a requested field.
type Candidate struct {
	Column schema.TableColumn
	Score  float64
}

// TopCandidates scores the raw field name against every column and returns
// the best n by score descending. Ties keep the schema's column order so
// results are deterministic for a given schema.
func TopCandidates(field string, columns []schema.TableColumn, n int) []Candidate {
	normalized := Normalize(field)

	candidates := make([]Candidate, len(columns))
	for i, col := range columns {
		candidates[i] = Candidate{Column: col, Score: Score(normalized, col)}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if n < len(candidates) {
		candidates = candidates[:n]
	}
	return candidates
}
