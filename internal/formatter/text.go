// Package formatter renders discovered schemas and coverage reports for the
// CLI and for embedding into report-builder messages.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/reportsmith/schemamatch/internal/coverage"
	"github.com/reportsmith/schemamatch/internal/schema"
)

// TextFormatter formats output as compact text
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// FormatSchema writes the schema in compact text format
func (f *TextFormatter) FormatSchema(s *schema.DatabaseSchema) error {
	for i, table := range s.Tables {
		if i > 0 {
			_, _ = fmt.Fprintln(f.writer) // Blank line between tables
		}
		f.formatTable(table, s)
	}
	return nil
}

func (f *TextFormatter) formatTable(table string, s *schema.DatabaseSchema) {
	pk := primaryKeyColumns(table, s)
	pkStr := ""
	if len(pk) > 0 {
		pkStr = fmt.Sprintf(" (PK: %s)", strings.Join(pk, ", "))
	}
	_, _ = fmt.Fprintf(f.writer, "TABLE %s%s\n", table, pkStr)

	for _, col := range s.Columns {
		if col.TableName != table {
			continue
		}
		_, _ = fmt.Fprintf(f.writer, "  %s\n", formatColumn(col))
	}

	rels := tableRelationships(table, s)
	if len(rels) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "  RELATIONS:")
		for _, rel := range rels {
			_, _ = fmt.Fprintf(f.writer, "    %s → %s.%s\n", rel.FromColumn, rel.ToTable, rel.ToColumn)
		}
	}
}

// FormatCoverage writes the coverage report in compact text format
func (f *TextFormatter) FormatCoverage(r coverage.Report) error {
	_, _ = fmt.Fprintf(f.writer, "COVERAGE %d%%\n", r.CoveragePct)

	if len(r.MatchedFields) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "MATCHED:")
		for _, m := range r.MatchedFields {
			_, _ = fmt.Fprintf(f.writer, "  %s → %s (%.1f%%)\n", m.FieldName, m.Column, m.Confidence)
		}
	}

	if len(r.MissingFields) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "MISSING:")
		for _, m := range r.MissingFields {
			_, _ = fmt.Fprintf(f.writer, "  %s\n", m.FieldName)
			if len(m.Suggestions) > 0 {
				_, _ = fmt.Fprintf(f.writer, "    suggestions: %s\n", strings.Join(m.Suggestions, ", "))
			}
		}
	}

	return nil
}

func formatColumn(col schema.TableColumn) string {
	parts := []string{col.ColumnName, col.DataType}
	if col.IsPrimaryKey {
		parts = append(parts, "PK")
	}
	if col.IsForeignKey {
		parts = append(parts, fmt.Sprintf("FK→%s.%s", col.ReferencedTable, col.ReferencedColumn))
	}
	if col.IsNullable {
		parts = append(parts, "NULL")
	} else {
		parts = append(parts, "NOT NULL")
	}
	return strings.Join(parts, " ")
}

func primaryKeyColumns(table string, s *schema.DatabaseSchema) []string {
	var pk []string
	for _, col := range s.Columns {
		if col.TableName == table && col.IsPrimaryKey {
			pk = append(pk, col.ColumnName)
		}
	}
	return pk
}

func tableRelationships(table string, s *schema.DatabaseSchema) []schema.TableRelationship {
	var rels []schema.TableRelationship
	for _, rel := range s.Relationships {
		if rel.FromTable == table {
			rels = append(rels, rel)
		}
	}
	return rels
}
