// Package coverage partitions requested report fields into matched and
// missing against a discovered schema. A matching miss is normal,
// data-bearing output, never an error: downstream SQL generation uses the
// missing list to decide whether to block.
package coverage

import (
	"math"
	"strings"

	"github.com/reportsmith/schemamatch/internal/match"
	"github.com/reportsmith/schemamatch/internal/schema"
)

// AcceptanceThreshold is the minimum score at which the best candidate
// counts as a match. Empirically tuned alongside the scoring weights.
const AcceptanceThreshold = 0.35

// maxSuggestions caps the suggested columns reported for a missing field.
const maxSuggestions = 3

// MatchedField is a requested field resolved to a concrete column.
// Confidence is the match score expressed as a percentage, rounded to one
// decimal; it tracks the unclamped score and can exceed 100.
type MatchedField struct {
	FieldName  string
	Column     string
	Confidence float64
}

// MissingField is a requested field with no acceptable match. Suggestions
// holds up to three "table.column" strings from the best-scored candidates,
// even when all of them scored below the threshold.
type MissingField struct {
	FieldName   string
	Suggestions []string
}

// Report is the evaluation output. Every deduplicated input field appears in
// exactly one of MatchedFields or MissingFields.
type Report struct {
	CoveragePct   int
	MatchedFields []MatchedField
	MissingFields []MissingField
}

// Evaluate runs the column matcher across the requested field names and
// computes aggregate coverage. It never fails: a nil schema degrades to a
// report with no matches. Input order is preserved within both lists, and
// identical inputs always produce an identical report.
func Evaluate(s *schema.DatabaseSchema, fieldNames []string) Report {
	fields := dedupeFields(fieldNames)

	if len(fields) == 0 {
		// No fields requested: vacuously covered, so downstream generation
		// is not blocked.
		return Report{CoveragePct: 100}
	}

	if s == nil || len(s.Columns) == 0 {
		report := Report{}
		for _, f := range fields {
			report.MissingFields = append(report.MissingFields, MissingField{FieldName: f})
		}
		return report
	}

	var report Report
	for _, field := range fields {
		candidates := match.TopCandidates(field, s.Columns, maxSuggestions)

		if len(candidates) > 0 && candidates[0].Score >= AcceptanceThreshold {
			report.MatchedFields = append(report.MatchedFields, MatchedField{
				FieldName:  field,
				Column:     candidates[0].Column.Qualified(),
				Confidence: math.Round(candidates[0].Score*1000) / 10,
			})
			continue
		}

		missing := MissingField{FieldName: field}
		for _, c := range candidates {
			missing.Suggestions = append(missing.Suggestions, c.Column.Qualified())
		}
		report.MissingFields = append(report.MissingFields, missing)
	}

	report.CoveragePct = int(math.Round(float64(len(report.MatchedFields)) / float64(len(fields)) * 100))
	return report
}

// dedupeFields trims whitespace, drops empties and removes exact duplicates
// while preserving first-occurrence order. Deduplication is case-sensitive:
// differently-cased variants of the same logical field stay distinct even
// though normalization later erases the difference for matching.
func dedupeFields(fieldNames []string) []string {
	seen := make(map[string]bool, len(fieldNames))
	var fields []string
	for _, name := range fieldNames {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		fields = append(fields, name)
	}
	return fields
}
