// Package db discovers relational schemas from the database catalog.
// Each engine runs the same four catalog reads (base tables, columns,
// primary-key constraints, foreign-key constraints) and assembles them into
// a flat schema.DatabaseSchema with schema-qualified table names.
package db

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/reportsmith/schemamatch/internal/schema"
)

// ErrInvalidIdentifier reports a database identifier that fails the safety
// pattern. It marks a caller configuration error and is never absorbed into
// the mock-schema fallback.
var ErrInvalidIdentifier = errors.New("invalid database identifier")

var identifierPattern = regexp.MustCompile(`^[\w-]+$`)

// ValidateIdentifier checks a database or data-source name against ^[\w-]+$
// before it gets anywhere near a catalog query.
func ValidateIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

// columnRow is one row of the column catalog read, before assembly.
type columnRow struct {
	Table    string
	Name     string
	DataType string
	CharLen  *int64
	Nullable bool
}

// pkRef identifies one primary-key constraint column.
type pkRef struct {
	Table  string
	Column string
}

// fkRef is one column pair of a foreign-key constraint. For multi-column
// keys the Nth constrained column maps to the Nth referenced column.
type fkRef struct {
	FromTable  string
	FromColumn string
	ToTable    string
	ToColumn   string
}

// formatDataType folds the character length into the declared type. The
// driver convention of -1 for unbounded renders as "max".
func formatDataType(dataType string, charLen *int64) string {
	if charLen == nil {
		return dataType
	}
	if *charLen == -1 {
		return fmt.Sprintf("%s(max)", dataType)
	}
	return fmt.Sprintf("%s(%d)", dataType, *charLen)
}

// assembleSchema merges the four catalog reads into a DatabaseSchema,
// qualifying every table name with schemaName. A column is a primary key iff
// its schema.table.column key appears in the primary-key result set.
func assembleSchema(schemaName string, tables []string, cols []columnRow, pks []pkRef, fks []fkRef) *schema.DatabaseSchema {
	qualify := func(table string) string { return schemaName + "." + table }

	pkSet := make(map[string]bool, len(pks))
	for _, pk := range pks {
		pkSet[qualify(pk.Table)+"."+pk.Column] = true
	}

	fkByColumn := make(map[string]fkRef, len(fks))
	for _, fk := range fks {
		fkByColumn[fk.FromTable+"."+fk.FromColumn] = fk
	}

	qualified := make([]string, len(tables))
	for i, table := range tables {
		qualified[i] = qualify(table)
	}

	columns := make([]schema.TableColumn, 0, len(cols))
	for _, c := range cols {
		col := schema.TableColumn{
			TableName:    qualify(c.Table),
			ColumnName:   c.Name,
			DataType:     formatDataType(c.DataType, c.CharLen),
			IsNullable:   c.Nullable,
			IsPrimaryKey: pkSet[qualify(c.Table)+"."+c.Name],
		}
		if fk, ok := fkByColumn[c.Table+"."+c.Name]; ok {
			col.IsForeignKey = true
			col.ReferencedTable = qualify(fk.ToTable)
			col.ReferencedColumn = fk.ToColumn
		}
		columns = append(columns, col)
	}

	return &schema.DatabaseSchema{
		Tables:        qualified,
		Columns:       columns,
		Relationships: schema.BuildRelationships(columns),
	}
}
