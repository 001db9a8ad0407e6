package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// TaxRate is applied to every order subtotal.
const TaxRate = 0.07

// orderWindowDays is the span of the order-date window ending today.
const orderWindowDays = 300

// ErrInvalidConfig is returned before any row is produced when entity counts
// cannot yield a consistent dataset.
var ErrInvalidConfig = errors.New("invalid generation config")

type Config struct {
	Customers int
	Products  int
	Orders    int
	Reviews   int
}

func (c Config) Validate() error {
	if c.Customers < 1 {
		return fmt.Errorf("%w: customer count must be >= 1, got %d", ErrInvalidConfig, c.Customers)
	}
	if c.Products < 1 {
		return fmt.Errorf("%w: product count must be >= 1, got %d", ErrInvalidConfig, c.Products)
	}
	if c.Orders < 0 {
		return fmt.Errorf("%w: order count must be >= 0, got %d", ErrInvalidConfig, c.Orders)
	}
	if c.Reviews < 0 {
		return fmt.Errorf("%w: review count must be >= 0, got %d", ErrInvalidConfig, c.Reviews)
	}
	return nil
}

// Generator produces datasets from a private seeded source. A fixed seed
// reproduces the exact draw stream, so two runs with equal seed and counts
// yield identical datasets.
type Generator struct {
	rand  *rand.Rand
	today time.Time
}

func New(seed int64) *Generator {
	return NewAt(seed, time.Now().UTC())
}

// NewAt pins the reference date, which anchors signup, order and review dates.
func NewAt(seed int64, today time.Time) *Generator {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return &Generator{
		rand:  rand.New(rand.NewSource(seed)),
		today: day,
	}
}

func (g *Generator) Generate(cfg Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	customers := g.GenerateCustomers(cfg.Customers)
	products := g.GenerateProducts(cfg.Products)
	orders, items := g.GenerateOrders(customers, products, cfg.Orders)
	reviews := g.GenerateReviews(customers, products, cfg.Reviews)

	return &Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
		Reviews:    reviews,
	}, nil
}

func (g *Generator) GenerateCustomers(count int) []Customer {
	customers := make([]Customer, 0, count)
	for id := 1; id <= count; id++ {
		first := g.pick(firstNames)
		last := g.pick(lastNames)
		cs := cities[g.rand.Intn(len(cities))]
		signup := g.today.AddDate(0, 0, -g.intBetween(90, 720))
		segment := g.pick(segments)

		customers = append(customers, Customer{
			CustomerID: id,
			FirstName:  first,
			LastName:   last,
			Email:      fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), id),
			City:       cs.City,
			State:      cs.State,
			Segment:    segment,
			SignupDate: signup,
		})
	}
	return customers
}

func (g *Generator) GenerateProducts(count int) []Product {
	products := make([]Product, 0, count)
	for id := 1; id <= count; id++ {
		category := g.pick(categoryNames)
		subcategory := g.pick(subcategories[category])
		name := subcategory + " " + g.pick(qualifiers)
		price := round2(g.uniform(9.5, 350.0))
		// Cost ratio is capped at 0.7, so cost <= price for every product.
		cost := round2(price * g.uniform(0.4, 0.7))

		products = append(products, Product{
			ProductID:   id,
			Name:        name,
			Category:    category,
			Subcategory: subcategory,
			Price:       price,
			Cost:        cost,
			IsActive:    g.rand.Intn(4) < 3,
		})
	}
	return products
}

// GenerateOrders builds orders and their line items in one pass. Subtotals
// accumulate line totals with per-step rounding; the order matters for
// penny-level parity, so it is never refactored into a single final rounding.
func (g *Generator) GenerateOrders(customers []Customer, products []Product, count int) ([]Order, []OrderItem) {
	startDate := g.today.AddDate(0, 0, -orderWindowDays)

	orders := make([]Order, 0, count)
	var items []OrderItem
	itemID := 1

	for id := 1; id <= count; id++ {
		customer := customers[g.rand.Intn(len(customers))]
		orderDate := startDate.AddDate(0, 0, g.intBetween(0, orderWindowDays))
		status := g.weightedStatus()
		shipping := shippingCosts[g.rand.Intn(len(shippingCosts))]

		lineCount := g.intBetween(1, 5)
		subtotal := 0.0

		for i := 0; i < lineCount; i++ {
			product := products[g.rand.Intn(len(products))]
			quantity := g.intBetween(1, 3)
			discount := discounts[g.rand.Intn(len(discounts))]
			lineTotal := round2(float64(quantity) * product.Price * (1 - discount))
			subtotal = round2(subtotal + lineTotal)

			items = append(items, OrderItem{
				OrderItemID: itemID,
				OrderID:     id,
				ProductID:   product.ProductID,
				Quantity:    quantity,
				UnitPrice:   product.Price,
				Discount:    discount,
				LineTotal:   lineTotal,
			})
			itemID++
		}

		tax := round2(subtotal * TaxRate)
		total := round2(subtotal + shipping + tax)

		orders = append(orders, Order{
			OrderID:       id,
			CustomerID:    customer.CustomerID,
			OrderDate:     orderDate,
			Status:        status,
			PaymentMethod: g.pick(paymentMethods),
			Subtotal:      subtotal,
			ShippingCost:  shipping,
			Tax:           tax,
			Total:         total,
		})
	}

	return orders, items
}

// GenerateReviews picks customer and product independently: a review is not
// required to match a purchase, and ratings are not correlated with comment
// text. That noise is intentional.
func (g *Generator) GenerateReviews(customers []Customer, products []Product, count int) []Review {
	reviews := make([]Review, 0, count)
	for id := 1; id <= count; id++ {
		customer := customers[g.rand.Intn(len(customers))]
		product := products[g.rand.Intn(len(products))]
		rating := g.intBetween(1, 5)
		reviewDate := g.today.AddDate(0, 0, -g.intBetween(1, 280))
		title := g.pick(reviewTitles)
		comment := g.pick(reviewComments)

		reviews = append(reviews, Review{
			ReviewID:   id,
			CustomerID: customer.CustomerID,
			ProductID:  product.ProductID,
			Rating:     rating,
			Title:      title,
			Comment:    comment,
			ReviewDate: reviewDate,
		})
	}
	return reviews
}

// weightedStatus samples order status from the cumulative weight table with a
// single uniform draw.
func (g *Generator) weightedStatus() string {
	total := 0
	for _, s := range orderStatuses {
		total += s.Weight
	}

	draw := g.rand.Intn(total)
	for _, s := range orderStatuses {
		draw -= s.Weight
		if draw < 0 {
			return s.Name
		}
	}
	return orderStatuses[len(orderStatuses)-1].Name
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rand.Intn(len(pool))]
}

// intBetween returns a uniform integer in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rand.Intn(hi-lo+1)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rand.Float64()*(hi-lo)
}

// round2 rounds to cents, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
