package schema

// TableColumn represents one physical column observed in the database catalog.
// Table names are schema-qualified (e.g. "public.orders"). The declared type
// carries length/precision folded in (e.g. "varchar(50)").
type TableColumn struct {
	TableName        string
	ColumnName       string
	DataType         string
	IsNullable       bool
	IsPrimaryKey     bool
	IsForeignKey     bool
	ReferencedTable  string
	ReferencedColumn string
}

// Qualified returns the column as a "table.column" string.
func (c TableColumn) Qualified() string {
	return c.TableName + "." + c.ColumnName
}

// TableRelationship is a directed foreign-key edge between two tables,
// derived from TableColumn foreign-key data.
type TableRelationship struct {
	FromTable  string
	FromColumn string
	ToTable    string
	ToColumn   string
}

// DatabaseSchema is the aggregate produced by a single discovery call.
// Tables are unique and schema-qualified, in the catalog's lexicographic
// order. The value is owned by the caller and is not mutated after
// construction.
type DatabaseSchema struct {
	Tables        []string
	Columns       []TableColumn
	Relationships []TableRelationship
}

// BuildRelationships projects the foreign-key edges out of a column list.
func BuildRelationships(columns []TableColumn) []TableRelationship {
	var rels []TableRelationship
	for _, col := range columns {
		if !col.IsForeignKey {
			continue
		}
		rels = append(rels, TableRelationship{
			FromTable:  col.TableName,
			FromColumn: col.ColumnName,
			ToTable:    col.ReferencedTable,
			ToColumn:   col.ReferencedColumn,
		})
	}
	return rels
}
