package loader

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect captures the provider-specific pieces of the loader: driver name,
// placeholder format, column type mapping and the upsert statement shape.
type Dialect struct {
	provider string
}

func DialectFor(provider string) (Dialect, error) {
	switch provider {
	case "sqlite", "sqlite3":
		return Dialect{provider: "sqlite"}, nil
	case "postgresql", "postgres":
		return Dialect{provider: "postgres"}, nil
	case "mysql":
		return Dialect{provider: "mysql"}, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database provider: %s (supported: sqlite, postgresql, mysql)", provider)
	}
}

func (d Dialect) Provider() string {
	return d.provider
}

// Open connects to the destination store and verifies the connection. The
// loader holds this single connection for the duration of the run.
func Open(provider, url string) (*sql.DB, Dialect, error) {
	d, err := DialectFor(provider)
	if err != nil {
		return nil, Dialect{}, err
	}

	driver, dsn := d.driverDSN(url)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("failed to open %s connection: %w", d.provider, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, Dialect{}, fmt.Errorf("failed to ping %s database: %w", d.provider, err)
	}

	return db, d, nil
}

func (d Dialect) driverDSN(url string) (driver, dsn string) {
	switch d.provider {
	case "sqlite":
		dsn = strings.TrimPrefix(url, "sqlite://")
		// Foreign keys are off by default in SQLite; the schema relies on them.
		if !strings.Contains(dsn, "?") {
			dsn += "?_foreign_keys=on"
		}
		return "sqlite3", dsn
	case "mysql":
		return "mysql", url
	default:
		return "pgx", url
	}
}

func (d Dialect) builder() squirrel.StatementBuilderType {
	if d.provider == "postgres" {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (d Dialect) columnType(generic string) string {
	switch d.provider {
	case "postgres":
		if generic == "REAL" {
			return "DOUBLE PRECISION"
		}
	case "mysql":
		if generic == "REAL" {
			return "DOUBLE"
		}
	}
	return generic
}

// CreateTableSQL renders idempotent DDL for one table, primary key and
// foreign keys included.
func (d Dialect) CreateTableSQL(t Table) string {
	var defs []string
	for _, c := range t.Columns {
		def := fmt.Sprintf("%s %s", c.Name, d.columnType(c.Type))
		if c.Name == t.PrimaryKey {
			def += " PRIMARY KEY"
		} else if c.NotNull {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}
	for _, fk := range t.ForeignKeys {
		defs = append(defs, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(%s)", fk.Column, fk.RefTable, fk.RefColumn))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", t.Name, strings.Join(defs, ",\n\t"))
}

// upsert builds an insert-or-replace-by-primary-key statement, so re-loading
// the same rows leaves the table state unchanged.
func (d Dialect) upsert(t Table, values []interface{}) (string, []interface{}, error) {
	columns := t.ColumnNames()
	insert := d.builder().Insert(t.Name).Columns(columns...).Values(values...)

	switch d.provider {
	case "sqlite":
		insert = insert.Options("OR REPLACE")
	case "postgres":
		insert = insert.Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s",
			t.PrimaryKey, strings.Join(d.assignments(t, "EXCLUDED.%s"), ", ")))
	case "mysql":
		insert = insert.Suffix("ON DUPLICATE KEY UPDATE " +
			strings.Join(d.assignments(t, "VALUES(%s)"), ", "))
	}

	return insert.ToSql()
}

func (d Dialect) assignments(t Table, rhs string) []string {
	var assigns []string
	for _, c := range t.Columns {
		if c.Name == t.PrimaryKey {
			continue
		}
		assigns = append(assigns, fmt.Sprintf("%s = "+rhs, c.Name, c.Name))
	}
	return assigns
}
