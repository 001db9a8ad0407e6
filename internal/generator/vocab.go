package generator

// ── Word pools ──

var firstNames = []string{
	"Alex", "Taylor", "Jordan", "Casey", "Morgan",
	"Riley", "Quinn", "Jamie", "Robin", "Avery",
}

var lastNames = []string{
	"Smith", "Johnson", "Garcia", "Brown", "Lee",
	"Martinez", "Davis", "Lopez", "Clark", "Walker",
}

type cityState struct {
	City  string
	State string
}

var cities = []cityState{
	{"Seattle", "WA"},
	{"Portland", "OR"},
	{"San Francisco", "CA"},
	{"Los Angeles", "CA"},
	{"Denver", "CO"},
	{"Austin", "TX"},
	{"Chicago", "IL"},
	{"Atlanta", "GA"},
	{"Miami", "FL"},
	{"New York", "NY"},
}

var segments = []string{"consumer", "small_business", "enterprise"}

// categoryNames fixes the sampling order; subcategories are looked up per category.
var categoryNames = []string{"Electronics", "Home", "Outdoors", "Beauty", "Toys"}

var subcategories = map[string][]string{
	"Electronics": {"Headphones", "Laptop", "Smartwatch", "Camera", "Speaker"},
	"Home":        {"Vacuum", "Coffee Maker", "Air Fryer", "Blender", "Desk Lamp"},
	"Outdoors":    {"Tent", "Backpack", "Water Bottle", "Hiking Boots", "Cooler"},
	"Beauty":      {"Serum", "Moisturizer", "Hair Dryer", "Trimmer", "Sunscreen"},
	"Toys":        {"Board Game", "Drone", "RC Car", "Puzzle", "Building Set"},
}

var qualifiers = []string{"Pro", "Lite", "Max", "Plus", "Mini", "Go", "Prime", "Studio"}

var paymentMethods = []string{"card", "paypal", "bank_transfer", "apple_pay", "google_pay"}

// orderStatuses carries the weighted categorical distribution for order status.
// Weights sum to 100.
var orderStatuses = []weightedStatus{
	{"pending", 5},
	{"processing", 15},
	{"shipped", 25},
	{"delivered", 45},
	{"returned", 5},
	{"canceled", 5},
}

type weightedStatus struct {
	Name   string
	Weight int
}

var shippingCosts = []float64{0, 4.99, 7.99, 12.99}

// discounts makes a zero discount four times as likely as any single nonzero value.
var discounts = []float64{0, 0, 0, 0, 0.05, 0.1, 0.15, 0.2}

var reviewTitles = []string{"Excellent", "Good", "Okay", "Poor", "Skip this"}

var reviewComments = []string{
	"Great quality and fast shipping.",
	"Item as described. Would buy again.",
	"Decent value for the price.",
	"Packaging could be better.",
	"Exceeded expectations!",
	"Arrived late but product is good.",
	"Not as durable as I hoped.",
	"Fantastic customer service.",
	"Works as advertised.",
	"Returned for a refund.",
}
