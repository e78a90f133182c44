package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/reportsmith/schemamatch/internal/schema"
)

// PostgresClient manages the connection pool to PostgreSQL. A pool rather
// than a single connection because the catalog queries run concurrently.
type PostgresClient struct {
	pool *pgxpool.Pool
}

// NewPostgresClient creates a new PostgreSQL client
func NewPostgresClient(ctx context.Context, connString string) (*PostgresClient, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresClient{pool: pool}, nil
}

// Close closes the connection pool
func (c *PostgresClient) Close() {
	c.pool.Close()
}

// PostgresExtractor discovers the schema from the PostgreSQL catalog
type PostgresExtractor struct {
	client     *PostgresClient
	schemaName string
}

// NewPostgresExtractor creates a new PostgreSQL schema extractor
func NewPostgresExtractor(client *PostgresClient, schemaName string) *PostgresExtractor {
	return &PostgresExtractor{
		client:     client,
		schemaName: schemaName,
	}
}

// Extract runs the four catalog queries concurrently and assembles the
// result once all have completed.
func (e *PostgresExtractor) Extract(ctx context.Context) (*schema.DatabaseSchema, error) {
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

func (e *PostgresExtractor) queryTables(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := e.client.pool.Query(ctx, query, e.schemaName)
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

func (e *PostgresExtractor) queryColumns(ctx context.Context) ([]columnRow, error) {
	query := `
		SELECT table_name, column_name, data_type, character_maximum_length, is_nullable
		FROM information_schema.columns
		WHERE table_schema = $1
		ORDER BY table_name, ordinal_position
	`

	rows, err := e.client.pool.Query(ctx, query, e.schemaName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []columnRow
	for rows.Next() {
		var col columnRow
		var nullable string

		if err := rows.Scan(&col.Table, &col.Name, &col.DataType, &col.CharLen, &nullable); err != nil {
			return nil, err
		}

		col.Nullable = (nullable == "YES")
		cols = append(cols, col)
	}

	return cols, rows.Err()
}

func (e *PostgresExtractor) queryPrimaryKeys(ctx context.Context) ([]pkRef, error) {
	query := `
		SELECT kcu.table_name, kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON kcu.constraint_name = tc.constraint_name
			AND kcu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY'
			AND tc.table_schema = $1
		ORDER BY kcu.table_name, kcu.ordinal_position
	`

	rows, err := e.client.pool.Query(ctx, query, e.schemaName)
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

// queryForeignKeys joins each foreign-key column to the referenced key
// column at the same ordinal position, so multi-column keys pair up
// position by position.
func (e *PostgresExtractor) queryForeignKeys(ctx context.Context) ([]fkRef, error) {
	query := `
		SELECT kcu.table_name, kcu.column_name, ref.table_name, ref.column_name
		FROM information_schema.referential_constraints rc
		JOIN information_schema.key_column_usage kcu
			ON kcu.constraint_name = rc.constraint_name
			AND kcu.constraint_schema = rc.constraint_schema
		JOIN information_schema.key_column_usage ref
			ON ref.constraint_name = rc.unique_constraint_name
			AND ref.constraint_schema = rc.unique_constraint_schema
			AND ref.ordinal_position = kcu.position_in_unique_constraint
		WHERE kcu.table_schema = $1
		ORDER BY kcu.table_name, kcu.ordinal_position
	`

	rows, err := e.client.pool.Query(ctx, query, e.schemaName)
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
