package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/datasynth-io/shopsynth/internal/generator"
)

// File names and column orders are the wire contract between the generator and
// the loader. Column order follows the table definitions and never changes.
const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	ReviewsFile    = "reviews.csv"
)

var (
	CustomerColumns  = []string{"customer_id", "first_name", "last_name", "email", "city", "state", "segment", "signup_date"}
	ProductColumns   = []string{"product_id", "name", "category", "subcategory", "price", "cost", "is_active"}
	OrderColumns     = []string{"order_id", "customer_id", "order_date", "status", "payment_method", "subtotal", "shipping_cost", "tax", "total"}
	OrderItemColumns = []string{"order_item_id", "order_id", "product_id", "quantity", "unit_price", "discount", "line_total"}
	ReviewColumns    = []string{"review_id", "customer_id", "product_id", "rating", "title", "comment", "review_date"}
)

const dateLayout = "2006-01-02"

// WriteDataset serializes all five entity tables into dir, one CSV per table
// with a header row.
func WriteDataset(dir string, ds *generator.Dataset) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	customers := make([][]string, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		customers = append(customers, []string{
			strconv.Itoa(c.CustomerID),
			c.FirstName,
			c.LastName,
			c.Email,
			c.City,
			c.State,
			c.Segment,
			formatDate(c.SignupDate),
		})
	}
	if err := writeTable(filepath.Join(dir, CustomersFile), CustomerColumns, customers); err != nil {
		return err
	}

	products := make([][]string, 0, len(ds.Products))
	for _, p := range ds.Products {
		products = append(products, []string{
			strconv.Itoa(p.ProductID),
			p.Name,
			p.Category,
			p.Subcategory,
			formatMoney(p.Price),
			formatMoney(p.Cost),
			strconv.FormatBool(p.IsActive),
		})
	}
	if err := writeTable(filepath.Join(dir, ProductsFile), ProductColumns, products); err != nil {
		return err
	}

	orders := make([][]string, 0, len(ds.Orders))
	for _, o := range ds.Orders {
		orders = append(orders, []string{
			strconv.Itoa(o.OrderID),
			strconv.Itoa(o.CustomerID),
			formatDate(o.OrderDate),
			o.Status,
			o.PaymentMethod,
			formatMoney(o.Subtotal),
			formatMoney(o.ShippingCost),
			formatMoney(o.Tax),
			formatMoney(o.Total),
		})
	}
	if err := writeTable(filepath.Join(dir, OrdersFile), OrderColumns, orders); err != nil {
		return err
	}

	items := make([][]string, 0, len(ds.OrderItems))
	for _, it := range ds.OrderItems {
		items = append(items, []string{
			strconv.Itoa(it.OrderItemID),
			strconv.Itoa(it.OrderID),
			strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity),
			formatMoney(it.UnitPrice),
			strconv.FormatFloat(it.Discount, 'f', -1, 64),
			formatMoney(it.LineTotal),
		})
	}
	if err := writeTable(filepath.Join(dir, OrderItemsFile), OrderItemColumns, items); err != nil {
		return err
	}

	reviews := make([][]string, 0, len(ds.Reviews))
	for _, r := range ds.Reviews {
		reviews = append(reviews, []string{
			strconv.Itoa(r.ReviewID),
			strconv.Itoa(r.CustomerID),
			strconv.Itoa(r.ProductID),
			strconv.Itoa(r.Rating),
			r.Title,
			r.Comment,
			formatDate(r.ReviewDate),
		})
	}
	return writeTable(filepath.Join(dir, ReviewsFile), ReviewColumns, reviews)
}

func writeTable(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// formatMoney renders two fractional digits, matching currency precision.
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
