package generator

import "time"

// Customer is a synthetic storefront account. IDs are dense and 1-based,
// assigned in generation order.
type Customer struct {
	CustomerID int
	FirstName  string
	LastName   string
	Email      string
	City       string
	State      string
	Segment    string
	SignupDate time.Time
}

type Product struct {
	ProductID   int
	Name        string
	Category    string
	Subcategory string
	Price       float64
	Cost        float64
	IsActive    bool
}

type Order struct {
	OrderID       int
	CustomerID    int
	OrderDate     time.Time
	Status        string
	PaymentMethod string
	Subtotal      float64
	ShippingCost  float64
	Tax           float64
	Total         float64
}

type OrderItem struct {
	OrderItemID int
	OrderID     int
	ProductID   int
	Quantity    int
	UnitPrice   float64
	Discount    float64
	LineTotal   float64
}

type Review struct {
	ReviewID   int
	CustomerID int
	ProductID  int
	Rating     int
	Title      string
	Comment    string
	ReviewDate time.Time
}

// Dataset holds one complete generation run. Rows are never mutated after
// generation; re-generating with the same seed and counts reproduces the
// dataset field-for-field.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Reviews    []Review
}
