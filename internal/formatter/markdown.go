package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/reportsmith/schemamatch/internal/coverage"
	"github.com/reportsmith/schemamatch/internal/schema"
)

// MarkdownFormatter formats output as markdown
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// FormatSchema writes the schema in markdown format
func (f *MarkdownFormatter) FormatSchema(s *schema.DatabaseSchema) error {
	_, _ = fmt.Fprintln(f.writer, "# Database Schema")
	_, _ = fmt.Fprintln(f.writer)

	for _, table := range s.Tables {
		f.formatTable(table, s)
	}
	return nil
}

func (f *MarkdownFormatter) formatTable(table string, s *schema.DatabaseSchema) {
	_, _ = fmt.Fprintf(f.writer, "## %s\n\n", table)

	_, _ = fmt.Fprintln(f.writer, "| Column | Type | Nullable | Key |")
	_, _ = fmt.Fprintln(f.writer, "|--------|------|----------|-----|")
	for _, col := range s.Columns {
		if col.TableName != table {
			continue
		}
		key := ""
		switch {
		case col.IsPrimaryKey:
			key = "PK"
		case col.IsForeignKey:
			key = fmt.Sprintf("FK → %s.%s", col.ReferencedTable, col.ReferencedColumn)
		}
		nullable := "no"
		if col.IsNullable {
			nullable = "yes"
		}
		_, _ = fmt.Fprintf(f.writer, "| %s | %s | %s | %s |\n", col.ColumnName, col.DataType, nullable, key)
	}
	_, _ = fmt.Fprintln(f.writer)
}

// FormatCoverage writes the coverage report in markdown format
func (f *MarkdownFormatter) FormatCoverage(r coverage.Report) error {
	_, _ = fmt.Fprintf(f.writer, "# Field Coverage: %d%%\n\n", r.CoveragePct)

	if len(r.MatchedFields) > 0 {
		_, _ = fmt.Fprintln(f.writer, "## Matched Fields")
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "| Field | Column | Confidence |")
		_, _ = fmt.Fprintln(f.writer, "|-------|--------|------------|")
		for _, m := range r.MatchedFields {
			_, _ = fmt.Fprintf(f.writer, "| %s | %s | %.1f%% |\n", m.FieldName, m.Column, m.Confidence)
		}
		_, _ = fmt.Fprintln(f.writer)
	}

	if len(r.MissingFields) > 0 {
		_, _ = fmt.Fprintln(f.writer, "## Missing Fields")
		_, _ = fmt.Fprintln(f.writer)
		for _, m := range r.MissingFields {
			if len(m.Suggestions) > 0 {
				_, _ = fmt.Fprintf(f.writer, "- **%s** — did you mean: %s?\n", m.FieldName, strings.Join(m.Suggestions, ", "))
			} else {
				_, _ = fmt.Fprintf(f.writer, "- **%s**\n", m.FieldName)
			}
		}
		_, _ = fmt.Fprintln(f.writer)
	}

	return nil
}
