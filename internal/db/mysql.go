package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"golang.org/x/sync/errgroup"

	"github.com/reportsmith/schemamatch/internal/schema"
)

// MySQLClient manages the connection to MySQL
type MySQLClient struct {
	db *sql.DB
}

// NewMySQLClient creates a new MySQL client
func NewMySQLClient(ctx context.Context, connString string) (*MySQLClient, error) {
	db, err := sql.Open("mysql", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &MySQLClient{db: db}, nil
}

// Close closes the database connection
func (c *MySQLClient) Close() error {
	return c.db.Close()
}

// ParseDatabaseName extracts the database name from a MySQL DSN
// (user:pass@tcp(host:port)/dbname?params).
func ParseDatabaseName(connString string) (string, error) {
	slash := strings.LastIndex(connString, "/")
	if slash == -1 {
		return "", fmt.Errorf("no database name in connection string")
	}
	name := connString[slash+1:]
	if q := strings.Index(name, "?"); q != -1 {
		name = name[:q]
	}
	if name == "" {
		return "", fmt.Errorf("no database name in connection string")
	}
	return name, nil
}

// MySQLExtractor discovers the schema from the MySQL catalog
type MySQLExtractor struct {
	client     *MySQLClient
	schemaName string
}

// NewMySQLExtractor creates a new MySQL schema extractor
func NewMySQLExtractor(client *MySQLClient, schemaName string) *MySQLExtractor {
	return &MySQLExtractor{
		client:     client,
		schemaName: schemaName,
	}
}

// Extract runs the four catalog queries concurrently and assembles the
// result once all have completed. *sql.DB is safe for concurrent use.
func (e *MySQLExtractor) Extract(ctx context.Context) (*schema.DatabaseSchema, error) {
	var (
		tables []string
		cols   []columnRow
		pks    []pkRef
		fks    []fkRef
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tables, err = e.queryTables(ctx)
		return err
	})
	g.Go(func() (err error) {
		cols, err = e.queryColumns(ctx)
		return err
	})
	g.Go(func() (err error) {
		pks, err = e.queryPrimaryKeys(ctx)
		return err
	})
	g.Go(func() (err error) {
		fks, err = e.queryForeignKeys(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return assembleSchema(e.schemaName, tables, cols, pks, fks), nil
}

func (e *MySQLExtractor) queryTables(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = ? AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := e.client.db.QueryContext(ctx, query, e.schemaName)
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

func (e *MySQLExtractor) queryColumns(ctx context.Context) ([]columnRow, error) {
	query := `
		SELECT table_name, column_name, data_type, character_maximum_length, is_nullable
		FROM information_schema.columns
		WHERE table_schema = ?
		ORDER BY table_name, ordinal_position
	`

	rows, err := e.client.db.QueryContext(ctx, query, e.schemaName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []columnRow
	for rows.Next() {
		var col columnRow
		var charLen sql.NullInt64
		var nullable string

		if err := rows.Scan(&col.Table, &col.Name, &col.DataType, &charLen, &nullable); err != nil {
			return nil, err
		}

		if charLen.Valid {
			col.CharLen = &charLen.Int64
		}
		col.Nullable = (nullable == "YES")
		cols = append(cols, col)
	}

	return cols, rows.Err()
}

func (e *MySQLExtractor) queryPrimaryKeys(ctx context.Context) ([]pkRef, error) {
	query := `
		SELECT table_name, column_name
		FROM information_schema.key_column_usage
		WHERE table_schema = ?
			AND constraint_name = 'PRIMARY'
		ORDER BY table_name, ordinal_position
	`

	rows, err := e.client.db.QueryContext(ctx, query, e.schemaName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pks []pkRef
	for rows.Next() {
		var pk pkRef
		if err := rows.Scan(&pk.Table, &pk.Column); err != nil {
			return nil, err
		}
		pks = append(pks, pk)
	}

	return pks, rows.Err()
}

// queryForeignKeys reads the FK column pairs. MySQL's key_column_usage
// carries the referenced column on the same row, already paired by ordinal
// position.
func (e *MySQLExtractor) queryForeignKeys(ctx context.Context) ([]fkRef, error) {
	query := `
		SELECT kcu.table_name, kcu.column_name, kcu.referenced_table_name, kcu.referenced_column_name
		FROM information_schema.key_column_usage kcu
		WHERE kcu.table_schema = ?
			AND kcu.referenced_table_name IS NOT NULL
		ORDER BY kcu.table_name, kcu.ordinal_position
	`

	rows, err := e.client.db.QueryContext(ctx, query, e.schemaName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fks []fkRef
	for rows.Next() {
		var fk fkRef
		if err := rows.Scan(&fk.FromTable, &fk.FromColumn, &fk.ToTable, &fk.ToColumn); err != nil {
			return nil, err
		}
		fks = append(fks, fk)
	}

	return fks, rows.Err()
}
