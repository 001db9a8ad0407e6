package loader

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/datasynth-io/shopsynth/internal/csvio"
	"github.com/datasynth-io/shopsynth/internal/generator"
)

var testDay = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) (*sql.DB, Dialect) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, dialect, err := Open("sqlite", "sqlite://"+path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, dialect
}

func writeDataset(t *testing.T, customers, products, orders, reviews int) string {
	t.Helper()
	dir := t.TempDir()

	ds, err := generator.NewAt(42, testDay).Generate(generator.Config{
		Customers: customers, Products: products, Orders: orders, Reviews: reviews,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := csvio.WriteDataset(dir, ds); err != nil {
		t.Fatalf("WriteDataset failed: %v", err)
	}
	return dir
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// snapshot renders every row of every table into a stable string form.
func snapshot(t *testing.T, db *sql.DB) string {
	t.Helper()
	var sb strings.Builder

	for _, table := range Tables {
		rows, err := db.Query(fmt.Sprintf("SELECT * FROM %s ORDER BY %s", table.Name, table.PrimaryKey))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", table.Name, err)
		}

		cols, err := rows.Columns()
		if err != nil {
			t.Fatalf("Failed to get columns for %s: %v", table.Name, err)
		}

		for rows.Next() {
			values := make([]interface{}, len(cols))
			ptrs := make([]interface{}, len(cols))
			for i := range values {
				ptrs[i] = &values[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				t.Fatalf("Failed to scan %s: %v", table.Name, err)
			}
			fmt.Fprintf(&sb, "%s|%v\n", table.Name, values)
		}
		if err := rows.Err(); err != nil {
			t.Fatalf("Error iterating %s: %v", table.Name, err)
		}
		rows.Close()
	}

	return sb.String()
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	db, dialect := openTestStore(t)
	ctx := context.Background()

	if err := EnsureSchema(ctx, db, dialect); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO customers (customer_id, first_name, last_name, email) VALUES (1, 'Alex', 'Smith', 'alex.smith1@example.com')`); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// Second call must not touch existing data.
	if err := EnsureSchema(ctx, db, dialect); err != nil {
		t.Fatalf("Second EnsureSchema failed: %v", err)
	}
	if n := countRows(t, db, "customers"); n != 1 {
		t.Errorf("Expected 1 customer to survive EnsureSchema, got %d", n)
	}
}

func TestIngestEndToEnd(t *testing.T) {
	db, dialect := openTestStore(t)
	ctx := context.Background()
	dir := writeDataset(t, 3, 2, 5, 4)

	if err := EnsureSchema(ctx, db, dialect); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	if err := Ingest(ctx, db, dialect, dir); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	if n := countRows(t, db, "orders"); n != 5 {
		t.Errorf("Expected 5 orders, got %d", n)
	}
	if n := countRows(t, db, "customers"); n != 3 {
		t.Errorf("Expected 3 customers, got %d", n)
	}
	if n := countRows(t, db, "products"); n != 2 {
		t.Errorf("Expected 2 products, got %d", n)
	}
	if n := countRows(t, db, "reviews"); n != 4 {
		t.Errorf("Expected 4 reviews, got %d", n)
	}

	first := snapshot(t, db)

	// Re-running the load is idempotent: same input, same end state.
	if err := Ingest(ctx, db, dialect, dir); err != nil {
		t.Fatalf("Second Ingest failed: %v", err)
	}
	if again := snapshot(t, db); again != first {
		t.Error("Re-ingesting the same dataset changed the table snapshot")
	}
}

func TestUpsertReplacesByPrimaryKey(t *testing.T) {
	db, dialect := openTestStore(t)
	ctx := context.Background()

	if err := EnsureSchema(ctx, db, dialect); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	load := func(email string) {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		rows := &csvio.Table{
			Columns: csvio.CustomerColumns,
			Rows: []map[string]string{{
				"customer_id": "1", "first_name": "Alex", "last_name": "Smith",
				"email": email, "city": "Seattle", "state": "WA",
				"segment": "consumer", "signup_date": "2024-01-15",
			}},
		}
		if err := LoadTable(ctx, tx, dialect, Tables[0], rows); err != nil {
			t.Fatalf("LoadTable failed: %v", err)
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}
	}

	load("old@example.com")
	load("new@example.com")

	if n := countRows(t, db, "customers"); n != 1 {
		t.Fatalf("Expected 1 customer after replace, got %d", n)
	}
	var email string
	if err := db.QueryRow("SELECT email FROM customers WHERE customer_id = 1").Scan(&email); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if email != "new@example.com" {
		t.Errorf("Expected latest email to win, got %s", email)
	}
}

func TestLoadTableMissingColumn(t *testing.T) {
	db, dialect := openTestStore(t)
	ctx := context.Background()

	if err := EnsureSchema(ctx, db, dialect); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx failed: %v", err)
	}
	defer tx.Rollback()

	rows := &csvio.Table{
		Columns: []string{"customer_id", "first_name"},
		Rows:    []map[string]string{{"customer_id": "1", "first_name": "Alex"}},
	}
	err = LoadTable(ctx, tx, dialect, Tables[0], rows)
	if !errors.Is(err, ErrMalformedRow) {
		t.Errorf("Expected ErrMalformedRow, got %v", err)
	}
}

func TestIngestRollsBackOnConstraintViolation(t *testing.T) {
	db, dialect := openTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	writeCSV(t, filepath.Join(dir, "customers.csv"), csvio.CustomerColumns, [][]string{
		{"1", "Alex", "Smith", "alex.smith1@example.com", "Seattle", "WA", "consumer", "2024-01-15"},
	})
	writeCSV(t, filepath.Join(dir, "products.csv"), csvio.ProductColumns, [][]string{
		{"1", "Tent Pro", "Outdoors", "Tent", "120.00", "60.00", "true"},
	})
	writeCSV(t, filepath.Join(dir, "orders.csv"), csvio.OrderColumns, [][]string{
		{"1", "1", "2024-05-01", "delivered", "card", "120.00", "4.99", "8.40", "133.39"},
	})
	writeCSV(t, filepath.Join(dir, "order_items.csv"), csvio.OrderItemColumns, [][]string{
		{"1", "1", "1", "1", "120.00", "0", "120.00"},
	})
	// References product 999, which does not exist.
	writeCSV(t, filepath.Join(dir, "reviews.csv"), csvio.ReviewColumns, [][]string{
		{"1", "1", "999", "5", "Excellent", "Works as advertised.", "2024-05-10"},
	})

	if err := EnsureSchema(ctx, db, dialect); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	if err := Ingest(ctx, db, dialect, dir); err == nil {
		t.Fatal("Expected ingest to fail on foreign-key violation")
	}

	// The whole run rolls back: no partial state from earlier tables.
	for _, table := range []string{"customers", "products", "orders", "order_items", "reviews"} {
		if n := countRows(t, db, table); n != 0 {
			t.Errorf("Expected %s to be empty after rollback, got %d rows", table, n)
		}
	}
}

func writeCSV(t *testing.T, path string, header []string, rows [][]string) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		t.Fatalf("Failed to write header: %v", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			t.Fatalf("Failed to write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("Failed to flush CSV: %v", err)
	}
}
