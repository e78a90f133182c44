package match

import (
	"strings"

	"github.com/reportsmith/schemamatch/internal/schema"
)

// containmentBoost is added on top of the containment base score. Shape
// similarity and substring containment count as independent signals.
const containmentBoost = 0.3

// Score rates how well a normalized field token matches a column. It is
// pure and total: no similarity at all scores 0.
//
// An exact match of the normalized names scores exactly 1.0. Otherwise the
// score is a containment base (tighter containment scores higher, with the
// column-inside-field direction penalized at 0.8 since column names are the
// more authoritative shorter term), plus a flat containment boost, plus any
// synonym rule weights that fire. A synonym rule firing without any
// containment still yields a small non-zero score.
func Score(normalizedField string, col schema.TableColumn) float64 {
	column := Normalize(col.ColumnName)
	if normalizedField == "" || column == "" {
		return 0
	}
	if normalizedField == column {
		return 1.0
	}

	base, contained := containmentBase(normalizedField, column)

	boost := 0.0
	for _, rule := range synonymRules {
		if !strings.Contains(normalizedField, rule.Field) || !strings.Contains(column, rule.Column) {
			continue
		}
		boost += rule.Weight
		// Expanding the synonym inside the field token can turn a near miss
		// into an exact hit (e.g. "suggestedqty" -> "suggestedquantity").
		if strings.ReplaceAll(normalizedField, rule.Field, rule.Column) == column {
			base = 1.0
			contained = true
		}
	}

	if contained {
		base += containmentBoost
	}
	return base + boost
}

func containmentBase(field, column string) (float64, bool) {
	switch {
	case strings.Contains(column, field):
		return float64(len(field)) / float64(len(column)), true
	case strings.Contains(field, column):
		return float64(len(column)) / float64(len(field)) * 0.8, true
	}
	return 0, false
}
