package report

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Row is one customer×category group of the sales summary.
type Row struct {
	CustomerID   int64
	CustomerName string
	Category     string
	OrdersCount  int64
	Units        int64
	Revenue      float64
	AvgRating    sql.NullFloat64
	ReviewsCount int64
}

// TopCustomers runs the fixed five-table aggregation: per customer and
// product category, order count, units purchased, revenue, average rating and
// review count, ordered by revenue then order count, both descending.
func TopCustomers(ctx context.Context, db *sql.DB, limit uint64) ([]Row, error) {
	query, args, err := squirrel.
		Select(
			"c.customer_id",
			"c.first_name",
			"c.last_name",
			"p.category",
			"COUNT(DISTINCT o.order_id) AS orders_count",
			"SUM(oi.quantity) AS units_purchased",
			"SUM(oi.line_total) AS revenue",
			"AVG(r.rating) AS avg_rating",
			"COUNT(r.review_id) AS reviews_count",
		).
		From("customers c").
		Join("orders o ON o.customer_id = c.customer_id").
		Join("order_items oi ON oi.order_id = o.order_id").
		Join("products p ON p.product_id = oi.product_id").
		LeftJoin("reviews r ON r.product_id = p.product_id AND r.customer_id = c.customer_id").
		GroupBy("c.customer_id", "c.first_name", "c.last_name", "p.category").
		OrderBy("revenue DESC", "orders_count DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build report query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run report query: %w", err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var r Row
		var first, last string
		if err := rows.Scan(&r.CustomerID, &first, &last, &r.Category,
			&r.OrdersCount, &r.Units, &r.Revenue, &r.AvgRating, &r.ReviewsCount); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		r.CustomerName = first + " " + last
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return result, nil
}
