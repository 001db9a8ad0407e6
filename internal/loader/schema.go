package loader

// Table describes one destination table: column order matches the serialized
// row contract, and foreign keys carry the dependency edges the ingest order
// is derived from.
type Table struct {
	Name        string
	File        string
	PrimaryKey  string
	Columns     []Column
	ForeignKeys []ForeignKey
}

type Column struct {
	Name    string
	Type    string // generic SQL type, mapped per dialect
	NotNull bool
	Coerce  Kind
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Tables is the full destination schema. Slice order is arbitrary; the loader
// sorts topologically before ingesting.
var Tables = []Table{
	{
		Name:       "customers",
		File:       "customers.csv",
		PrimaryKey: "customer_id",
		Columns: []Column{
			{Name: "customer_id", Type: "INTEGER", NotNull: true, Coerce: KindInt},
			{Name: "first_name", Type: "TEXT", NotNull: true},
			{Name: "last_name", Type: "TEXT", NotNull: true},
			{Name: "email", Type: "TEXT", NotNull: true},
			{Name: "city", Type: "TEXT"},
			{Name: "state", Type: "TEXT"},
			{Name: "segment", Type: "TEXT"},
			{Name: "signup_date", Type: "TEXT"},
		},
	},
	{
		Name:       "products",
		File:       "products.csv",
		PrimaryKey: "product_id",
		Columns: []Column{
			{Name: "product_id", Type: "INTEGER", NotNull: true, Coerce: KindInt},
			{Name: "name", Type: "TEXT", NotNull: true},
			{Name: "category", Type: "TEXT"},
			{Name: "subcategory", Type: "TEXT"},
			{Name: "price", Type: "REAL", Coerce: KindFloat},
			{Name: "cost", Type: "REAL", Coerce: KindFloat},
			{Name: "is_active", Type: "INTEGER", Coerce: KindBool},
		},
	},
	{
		Name:       "orders",
		File:       "orders.csv",
		PrimaryKey: "order_id",
		Columns: []Column{
			{Name: "order_id", Type: "INTEGER", NotNull: true, Coerce: KindInt},
			{Name: "customer_id", Type: "INTEGER", NotNull: true, Coerce: KindInt},
			{Name: "order_date", Type: "TEXT"},
			{Name: "status", Type: "TEXT"},
			{Name: "payment_method", Type: "TEXT"},
			{Name: "subtotal", Type: "REAL", Coerce: KindFloat},
			{Name: "shipping_cost", Type: "REAL", Coerce: KindFloat},
			{Name: "tax", Type: "REAL", Coerce: KindFloat},
			{Name: "total", Type: "REAL", Coerce: KindFloat},
		},
		ForeignKeys: []ForeignKey{
			{Column: "customer_id", RefTable: "customers", RefColumn: "customer_id"},
		},
	},
	{
		Name:       "order_items",
		File:       "order_items.csv",
		PrimaryKey: "order_item_id",
		Columns: []Column{
			{Name: "order_item_id", Type: "INTEGER", NotNull: true, Coerce: KindInt},
			{Name: "order_id", Type: "INTEGER", NotNull: true, Coerce: KindInt},
			{Name: "product_id", Type: "INTEGER", NotNull: true, Coerce: KindInt},
			{Name: "quantity", Type: "INTEGER", Coerce: KindInt},
			{Name: "unit_price", Type: "REAL", Coerce: KindFloat},
			{Name: "discount", Type: "REAL", Coerce: KindFloat},
			{Name: "line_total", Type: "REAL", Coerce: KindFloat},
		},
		ForeignKeys: []ForeignKey{
			{Column: "order_id", RefTable: "orders", RefColumn: "order_id"},
			{Column: "product_id", RefTable: "products", RefColumn: "product_id"},
		},
	},
	{
		Name:       "reviews",
		File:       "reviews.csv",
		PrimaryKey: "review_id",
		Columns: []Column{
			{Name: "review_id", Type: "INTEGER", NotNull: true, Coerce: KindInt},
			{Name: "customer_id", Type: "INTEGER", NotNull: true, Coerce: KindInt},
			{Name: "product_id", Type: "INTEGER", NotNull: true, Coerce: KindInt},
			{Name: "rating", Type: "INTEGER", Coerce: KindInt},
			{Name: "title", Type: "TEXT"},
			{Name: "comment", Type: "TEXT"},
			{Name: "review_date", Type: "TEXT"},
		},
		ForeignKeys: []ForeignKey{
			{Column: "customer_id", RefTable: "customers", RefColumn: "customer_id"},
			{Column: "product_id", RefTable: "products", RefColumn: "product_id"},
		},
	},
}

// Dependencies lists the tables this table references, self-references excluded.
func (t Table) Dependencies() []string {
	var deps []string
	for _, fk := range t.ForeignKeys {
		if fk.RefTable != t.Name {
			deps = append(deps, fk.RefTable)
		}
	}
	return deps
}

func (t Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}
