package search

import (
	"strings"
	"testing"

	"github.com/reportsmith/schemamatch/internal/schema"
)

func TestColumns(t *testing.T) {
	s := schema.MockSchema()

	tests := []struct {
		name        string
		query       string
		limit       int
		wantContain string
		wantEmpty   bool
	}{
		{
			name:        "finds quantity columns",
			query:       "qtyonhand",
			limit:       5,
			wantContain: "QuantityOnHand",
		},
		{
			name:        "subsequence match",
			query:       "locname",
			limit:       5,
			wantContain: "LocationName",
		},
		{
			name:      "empty query",
			query:     "",
			limit:     5,
			wantEmpty: true,
		},
		{
			name:      "zero limit",
			query:     "location",
			limit:     0,
			wantEmpty: true,
		},
		{
			name:      "no match",
			query:     "zzzzzzzz",
			limit:     5,
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := Columns(s, tt.query, tt.limit)

			if tt.wantEmpty {
				if len(matches) != 0 {
					t.Errorf("expected no matches, got %v", matches)
				}
				return
			}

			if len(matches) == 0 {
				t.Fatal("expected matches, got none")
			}
			if len(matches) > tt.limit {
				t.Errorf("got %d matches, limit is %d", len(matches), tt.limit)
			}

			found := false
			for _, m := range matches {
				if strings.Contains(m.Column, tt.wantContain) {
					found = true
				}
				if len(m.Positions) == 0 {
					t.Errorf("match %s has no highlight positions", m.Column)
				}
			}
			if !found {
				t.Errorf("no match contains %q: %v", tt.wantContain, matches)
			}
		})
	}
}

func TestColumnsNilSchema(t *testing.T) {
	if got := Columns(nil, "location", 5); got != nil {
		t.Errorf("expected nil for nil schema, got %v", got)
	}
}

func TestTables(t *testing.T) {
	s := schema.MockSchema()

	matches := Tables(s, "purch", 3)
	if len(matches) == 0 {
		t.Fatal("expected matches, got none")
	}
	if matches[0].Column != "dbo.PurchaseOrders" {
		t.Errorf("best table = %s, want dbo.PurchaseOrders", matches[0].Column)
	}
}
