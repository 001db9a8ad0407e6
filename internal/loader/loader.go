package loader

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/datasynth-io/shopsynth/internal/csvio"
)

// EnsureSchema creates the five destination tables if absent. It is safe to
// call against a populated store: existing tables and their data are left
// untouched.
func EnsureSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	order, err := insertionOrder(Tables)
	if err != nil {
		return err
	}

	for _, table := range order {
		if _, err := db.ExecContext(ctx, d.CreateTableSQL(table)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}
	}
	return nil
}

// LoadTable upserts every row of one parsed CSV table inside the supplied
// transaction. Columns with a declared coercion are converted; everything
// else passes through as text.
func LoadTable(ctx context.Context, tx *sql.Tx, d Dialect, table Table, rows *csvio.Table) error {
	present := make(map[string]bool, len(rows.Columns))
	for _, col := range rows.Columns {
		present[col] = true
	}
	for _, col := range table.Columns {
		if !present[col.Name] {
			return fmt.Errorf("%w: table %s input is missing column %s", ErrMalformedRow, table.Name, col.Name)
		}
	}

	for i, row := range rows.Rows {
		values := make([]interface{}, 0, len(table.Columns))
		for _, col := range table.Columns {
			raw, ok := row[col.Name]
			if !ok {
				return fmt.Errorf("%w: table %s row %d is missing column %s", ErrMalformedRow, table.Name, i+1, col.Name)
			}

			value, err := Coerce(raw, col.Coerce)
			if err != nil {
				return fmt.Errorf("table %s row %d column %s: %w", table.Name, i+1, col.Name, err)
			}
			values = append(values, value)
		}

		query, args, err := d.upsert(table, values)
		if err != nil {
			return fmt.Errorf("failed to build upsert for %s: %w", table.Name, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to upsert into %s (row %d): %w", table.Name, i+1, err)
		}
	}

	return nil
}

// Ingest reads the serialized tables from dataDir and loads all five into the
// store inside a single transaction, parents before children. Any failure
// rolls the whole run back; the store is left exactly as it was.
func Ingest(ctx context.Context, db *sql.DB, d Dialect, dataDir string) error {
	order, err := insertionOrder(Tables)
	if err != nil {
		return err
	}

	parsed := make(map[string]*csvio.Table, len(order))
	for _, table := range order {
		t, err := csvio.ReadTable(filepath.Join(dataDir, table.File))
		if err != nil {
			return err
		}
		parsed[table.Name] = t
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range order {
		if err := LoadTable(ctx, tx, d, table, parsed[table.Name]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ingestion: %w", err)
	}
	return nil
}
