package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/reportsmith/schemamatch/internal/schema"
)

// sqliteSchemaName qualifies SQLite tables; SQLite's main database plays
// the role of the schema.
const sqliteSchemaName = "main"

// SQLiteClient manages the connection to SQLite
type SQLiteClient struct {
	db *sql.DB
}

// NewSQLiteClient creates a new SQLite client
func NewSQLiteClient(ctx context.Context, path string) (*SQLiteClient, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

// Close closes the database connection
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// SQLiteExtractor discovers the schema from sqlite_master and the table
// PRAGMAs. Unlike the server engines there is no single catalog view to
// read concurrently; the per-table PRAGMAs run sequentially, which produces
// an identical result.
type SQLiteExtractor struct {
	client *SQLiteClient
}

// NewSQLiteExtractor creates a new SQLite schema extractor
func NewSQLiteExtractor(client *SQLiteClient) *SQLiteExtractor {
	return &SQLiteExtractor{
		client: client,
	}
}

// Extract assembles the schema for every user table in the database.
func (e *SQLiteExtractor) Extract(ctx context.Context) (*schema.DatabaseSchema, error) {
	tables, err := e.queryTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var cols []columnRow
	var pks []pkRef
	pkByTable := make(map[string][]string)

	for _, table := range tables {
		tableCols, tablePKs, err := e.queryColumns(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to read columns for %s: %w", table, err)
		}
		cols = append(cols, tableCols...)
		pks = append(pks, tablePKs...)
		for _, pk := range tablePKs {
			pkByTable[pk.Table] = append(pkByTable[pk.Table], pk.Column)
		}
	}

	var fks []fkRef
	for _, table := range tables {
		tableFKs, err := e.queryForeignKeys(ctx, table, pkByTable)
		if err != nil {
			return nil, fmt.Errorf("failed to read foreign keys for %s: %w", table, err)
		}
		fks = append(fks, tableFKs...)
	}

	return assembleSchema(sqliteSchemaName, tables, cols, pks, fks), nil
}

func (e *SQLiteExtractor) queryTables(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := e.client.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tables = append(tables, tableName)
	}

	return tables, rows.Err()
}

func (e *SQLiteExtractor) queryColumns(ctx context.Context, tableName string) ([]columnRow, []pkRef, error) {
	query := fmt.Sprintf("PRAGMA table_info(%q)", tableName)

	rows, err := e.client.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var cols []columnRow
	var pks []pkRef
	for rows.Next() {
		var cid, notNull, pk int
		var name, colType string
		var defaultValue sql.NullString

		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultValue, &pk); err != nil {
			return nil, nil, err
		}

		cols = append(cols, columnRow{
			Table:    tableName,
			Name:     name,
			DataType: colType,
			Nullable: notNull == 0 && pk == 0,
		})
		if pk > 0 {
			pks = append(pks, pkRef{Table: tableName, Column: name})
		}
	}

	return cols, pks, rows.Err()
}

// queryForeignKeys reads PRAGMA foreign_key_list. When the referenced
// column is omitted (an implicit primary-key reference) it is resolved from
// the referenced table's primary key at the same position.
func (e *SQLiteExtractor) queryForeignKeys(ctx context.Context, tableName string, pkByTable map[string][]string) ([]fkRef, error) {
	query := fmt.Sprintf("PRAGMA foreign_key_list(%q)", tableName)

	rows, err := e.client.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fks []fkRef
	for rows.Next() {
		var id, seq int
		var refTable, from, onUpdate, onDelete, matchClause string
		var to sql.NullString

		if err := rows.Scan(&id, &seq, &refTable, &from, &to, &onUpdate, &onDelete, &matchClause); err != nil {
			return nil, err
		}

		fk := fkRef{FromTable: tableName, FromColumn: from, ToTable: refTable}
		if to.Valid {
			fk.ToColumn = to.String
		} else if pk := pkByTable[refTable]; seq < len(pk) {
			fk.ToColumn = pk[seq]
		}
		fks = append(fks, fk)
	}

	return fks, rows.Err()
}
