package coverage

import (
	"reflect"
	"testing"

	"github.com/reportsmith/schemamatch/internal/schema"
)

func TestEvaluate(t *testing.T) {
	s := schema.MockSchema()

	tests := []struct {
		name        string
		fields      []string
		wantPct     int
		wantMatched []string
		wantMissing []string
	}{
		{
			name:        "exact and fuzzy matches",
			fields:      []string{"Location", "Suggested Qty"},
			wantPct:     100,
			wantMatched: []string{"Location", "Suggested Qty"},
		},
		{
			name:        "missing field lowers coverage",
			fields:      []string{"Location", "Nonexistent Field"},
			wantPct:     50,
			wantMatched: []string{"Location"},
			wantMissing: []string{"Nonexistent Field"},
		},
		{
			name:        "whitespace and duplicates collapse",
			fields:      []string{" Location ", "Location", "", "   "},
			wantPct:     100,
			wantMatched: []string{"Location"},
		},
		{
			name:        "case variants stay distinct",
			fields:      []string{"Location", "location"},
			wantPct:     100,
			wantMatched: []string{"Location", "location"},
		},
		{
			name:    "empty field list is vacuously covered",
			fields:  nil,
			wantPct: 100,
		},
		{
			name:        "rounding",
			fields:      []string{"Location", "Suggested Qty", "Nonexistent Field"},
			wantPct:     67,
			wantMatched: []string{"Location", "Suggested Qty"},
			wantMissing: []string{"Nonexistent Field"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(s, tt.fields)

			if report.CoveragePct != tt.wantPct {
				t.Errorf("CoveragePct = %d, want %d", report.CoveragePct, tt.wantPct)
			}

			var matched []string
			for _, m := range report.MatchedFields {
				matched = append(matched, m.FieldName)
			}
			if !reflect.DeepEqual(matched, tt.wantMatched) {
				t.Errorf("matched fields = %v, want %v", matched, tt.wantMatched)
			}

			var missing []string
			for _, m := range report.MissingFields {
				missing = append(missing, m.FieldName)
			}
			if !reflect.DeepEqual(missing, tt.wantMissing) {
				t.Errorf("missing fields = %v, want %v", missing, tt.wantMissing)
			}
		})
	}
}

// Every deduplicated input field lands in exactly one of the two lists.
func TestEvaluatePartition(t *testing.T) {
	s := schema.MockSchema()
	fields := []string{"Location", "Item Name", "Qty On Hand", "Frobnicator", "Location", " ", "Total Revenue"}

	report := Evaluate(s, fields)

	// Deduped: Location, Item Name, Qty On Hand, Frobnicator, Total Revenue
	const wantUnique = 5
	if got := len(report.MatchedFields) + len(report.MissingFields); got != wantUnique {
		t.Errorf("matched + missing = %d, want %d", got, wantUnique)
	}

	seen := make(map[string]int)
	for _, m := range report.MatchedFields {
		seen[m.FieldName]++
	}
	for _, m := range report.MissingFields {
		seen[m.FieldName]++
	}
	for field, count := range seen {
		if count != 1 {
			t.Errorf("field %q appears %d times across both lists", field, count)
		}
	}
}

func TestEvaluateMatchDetails(t *testing.T) {
	s := schema.MockSchema()

	report := Evaluate(s, []string{"Suggested Qty"})

	if len(report.MatchedFields) != 1 {
		t.Fatalf("expected 1 matched field, got %d", len(report.MatchedFields))
	}
	m := report.MatchedFields[0]
	if m.Column != "dbo.PurchaseOrders.SuggestedQuantity" {
		t.Errorf("matched column = %s, want dbo.PurchaseOrders.SuggestedQuantity", m.Column)
	}
	// 1.5 score: exact after synonym expansion + containment boost + qty rule
	if m.Confidence != 150.0 {
		t.Errorf("confidence = %v, want 150.0", m.Confidence)
	}
}

func TestEvaluateMissingSuggestions(t *testing.T) {
	s := schema.MockSchema()

	report := Evaluate(s, []string{"Nonexistent Field"})

	if len(report.MissingFields) != 1 {
		t.Fatalf("expected 1 missing field, got %d", len(report.MissingFields))
	}
	m := report.MissingFields[0]
	// Suggestions come from the best candidates even when every score is zero.
	if len(m.Suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(m.Suggestions))
	}
	if report.CoveragePct != 0 {
		t.Errorf("CoveragePct = %d, want 0", report.CoveragePct)
	}
}

func TestEvaluateNilSchema(t *testing.T) {
	tests := []struct {
		name        string
		fields      []string
		wantPct     int
		wantMissing int
	}{
		{
			name:        "nil schema with fields",
			fields:      []string{"Location", "Item Name"},
			wantPct:     0,
			wantMissing: 2,
		},
		{
			name:    "nil schema without fields",
			fields:  nil,
			wantPct: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(nil, tt.fields)

			if report.CoveragePct != tt.wantPct {
				t.Errorf("CoveragePct = %d, want %d", report.CoveragePct, tt.wantPct)
			}
			if len(report.MatchedFields) != 0 {
				t.Errorf("expected no matches, got %d", len(report.MatchedFields))
			}
			if len(report.MissingFields) != tt.wantMissing {
				t.Errorf("missing = %d, want %d", len(report.MissingFields), tt.wantMissing)
			}
			for _, m := range report.MissingFields {
				if len(m.Suggestions) != 0 {
					t.Errorf("field %q has suggestions without a schema", m.FieldName)
				}
			}
		})
	}
}

// Identical inputs must produce identical reports.
func TestEvaluateDeterministic(t *testing.T) {
	s := schema.MockSchema()
	fields := []string{"Location", "Suggested Qty", "Nonexistent Field", "Total Revenue"}

	first := Evaluate(s, fields)
	second := Evaluate(s, fields)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated evaluation differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
