package report

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/datasynth-io/shopsynth/internal/csvio"
	"github.com/datasynth-io/shopsynth/internal/generator"
	"github.com/datasynth-io/shopsynth/internal/loader"
)

func loadedStore(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	ds, err := generator.NewAt(42, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).
		Generate(generator.Config{Customers: 10, Products: 8, Orders: 20, Reviews: 15})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	dir := t.TempDir()
	if err := csvio.WriteDataset(dir, ds); err != nil {
		t.Fatalf("WriteDataset failed: %v", err)
	}

	db, dialect, err := loader.Open("sqlite", "sqlite://"+filepath.Join(t.TempDir(), "report.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := loader.EnsureSchema(ctx, db, dialect); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	if err := loader.Ingest(ctx, db, dialect, dir); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	return db
}

func TestTopCustomers(t *testing.T) {
	db := loadedStore(t)

	rows, err := TopCustomers(context.Background(), db, 10)
	if err != nil {
		t.Fatalf("TopCustomers failed: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("Expected at least one summary row")
	}
	if len(rows) > 10 {
		t.Fatalf("Expected at most 10 rows, got %d", len(rows))
	}

	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if cur.Revenue > prev.Revenue {
			t.Errorf("Rows out of order: revenue %.2f after %.2f", cur.Revenue, prev.Revenue)
		}
		if cur.Revenue == prev.Revenue && cur.OrdersCount > prev.OrdersCount {
			t.Errorf("Tie-break violated: %d orders after %d", cur.OrdersCount, prev.OrdersCount)
		}
	}

	for _, r := range rows {
		if r.OrdersCount < 1 {
			t.Errorf("Customer %d has summary row with no orders", r.CustomerID)
		}
		if r.CustomerName == "" || r.Category == "" {
			t.Errorf("Incomplete summary row: %+v", r)
		}
		if r.AvgRating.Valid && (r.AvgRating.Float64 < 1 || r.AvgRating.Float64 > 5) {
			t.Errorf("Average rating %.2f outside [1, 5]", r.AvgRating.Float64)
		}
	}
}

func TestTopCustomersLimit(t *testing.T) {
	db := loadedStore(t)

	rows, err := TopCustomers(context.Background(), db, 3)
	if err != nil {
		t.Fatalf("TopCustomers failed: %v", err)
	}
	if len(rows) > 3 {
		t.Errorf("Expected at most 3 rows, got %d", len(rows))
	}
}
