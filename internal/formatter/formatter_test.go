package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reportsmith/schemamatch/internal/coverage"
	"github.com/reportsmith/schemamatch/internal/schema"
)

func testSchema() *schema.DatabaseSchema {
	columns := []schema.TableColumn{
		{TableName: "dbo.Items", ColumnName: "ItemID", DataType: "int", IsPrimaryKey: true},
		{TableName: "dbo.Items", ColumnName: "ItemName", DataType: "varchar(100)", IsNullable: true},
		{TableName: "dbo.Inventory", ColumnName: "InventoryID", DataType: "int", IsPrimaryKey: true},
		{TableName: "dbo.Inventory", ColumnName: "ItemID", DataType: "int", IsForeignKey: true, ReferencedTable: "dbo.Items", ReferencedColumn: "ItemID"},
	}
	return &schema.DatabaseSchema{
		Tables:        []string{"dbo.Items", "dbo.Inventory"},
		Columns:       columns,
		Relationships: schema.BuildRelationships(columns),
	}
}

func testReport() coverage.Report {
	return coverage.Report{
		CoveragePct: 67,
		MatchedFields: []coverage.MatchedField{
			{FieldName: "Item Name", Column: "dbo.Items.ItemName", Confidence: 130.0},
		},
		MissingFields: []coverage.MissingField{
			{FieldName: "Warranty Period", Suggestions: []string{"dbo.Items.ItemName"}},
			{FieldName: "Nonexistent"},
		},
	}
}

func TestTextFormatSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextFormatter(&buf).FormatSchema(testSchema()); err != nil {
		t.Fatalf("FormatSchema failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"TABLE dbo.Items (PK: ItemID)",
		"ItemName varchar(100) NULL",
		"ItemID int PK NOT NULL",
		"TABLE dbo.Inventory (PK: InventoryID)",
		"FK→dbo.Items.ItemID",
		"RELATIONS:",
		"ItemID → dbo.Items.ItemID",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextFormatCoverage(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextFormatter(&buf).FormatCoverage(testReport()); err != nil {
		t.Fatalf("FormatCoverage failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"COVERAGE 67%",
		"MATCHED:",
		"Item Name → dbo.Items.ItemName (130.0%)",
		"MISSING:",
		"Warranty Period",
		"suggestions: dbo.Items.ItemName",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// A missing field with no suggestions prints no suggestion line.
	if strings.Contains(out, "Nonexistent\n    suggestions:") {
		t.Errorf("unexpected suggestion line for field without suggestions:\n%s", out)
	}
}

func TestMarkdownFormatSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownFormatter(&buf).FormatSchema(testSchema()); err != nil {
		t.Fatalf("FormatSchema failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Database Schema",
		"## dbo.Items",
		"| Column | Type | Nullable | Key |",
		"| ItemID | int | no | PK |",
		"| ItemName | varchar(100) | yes |  |",
		"| ItemID | int | no | FK → dbo.Items.ItemID |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownFormatCoverage(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownFormatter(&buf).FormatCoverage(testReport()); err != nil {
		t.Fatalf("FormatCoverage failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Field Coverage: 67%",
		"## Matched Fields",
		"| Item Name | dbo.Items.ItemName | 130.0% |",
		"## Missing Fields",
		"did you mean: dbo.Items.ItemName?",
		"- **Nonexistent**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCoverageEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextFormatter(&buf).FormatCoverage(coverage.Report{CoveragePct: 100}); err != nil {
		t.Fatalf("FormatCoverage failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "COVERAGE 100%") {
		t.Errorf("output missing coverage line:\n%s", out)
	}
	if strings.Contains(out, "MATCHED:") || strings.Contains(out, "MISSING:") {
		t.Errorf("unexpected sections for empty report:\n%s", out)
	}
}
