package schemas

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects the SQL flavor for schema rendering and placeholders.
// Postgres is the production store; SQLite backs local mode and tests.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

// Placeholder returns the n-th (1-based) bind placeholder for the dialect.
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Helper that lets us wrap SQL strings to be used as the default expression.
// This is necessary as we use a pointer and its weird
func SQLDefault(expr string) *string { return &expr }

func DefaultFalse() *string {
	return SQLDefault("FALSE")
}

func DefaultEmpty() *string {
	return SQLDefault("''")
}

func DefaultMedium() *string {
	return SQLDefault("'medium'")
}

type ColumnType int

const (
	ColumnSerial ColumnType = iota
	ColumnString
	ColumnText
	ColumnBool
)

type Column struct {
	Name           string
	Type           ColumnType
	PrimaryKey     bool // Default no
	Nullable       bool // Default no
	DefaultSQLExpr *string
}

type Schema struct {
	Name    string
	Columns []Column
	// Uniques are table-level UNIQUE constraints, one per column list.
	Uniques [][]string
}

func columnTypeToString(d Dialect, colType ColumnType) string {
	switch colType {
	case ColumnSerial:
		// SQLite: INTEGER PRIMARY KEY is the rowid and auto-assigns.
		if d == DialectPostgres {
			return "serial"
		}
		return "integer"
	case ColumnString:
		return "varchar(255)"
	case ColumnText:
		return "text"
	case ColumnBool:
		return "boolean"
	default:
		// fallback to something safe so schema generation never explodes
		return "varchar(255)"
	}
}

func columnToString(d Dialect, col Column) string {
	var parts []string

	// name + type
	parts = append(parts, col.Name)
	parts = append(parts, columnTypeToString(d, col.Type))

	// constraints
	if col.PrimaryKey {
		parts = append(parts, "PRIMARY KEY")
	}
	if !col.Nullable && !col.PrimaryKey {
		parts = append(parts, "NOT NULL")
	}
	if col.DefaultSQLExpr != nil {
		parts = append(parts, "DEFAULT "+*col.DefaultSQLExpr)
	}

	return strings.Join(parts, " ")
}

func schemaToCreationString(d Dialect, schema Schema) string {
	cols := make([]string, 0, len(schema.Columns)+len(schema.Uniques))

	for _, col := range schema.Columns {
		cols = append(cols, columnToString(d, col))
	}
	for _, u := range schema.Uniques {
		cols = append(cols, "UNIQUE ("+strings.Join(u, ", ")+")")
	}

	return "CREATE TABLE IF NOT EXISTS " + schema.Name + " (" + strings.Join(cols, ", ") + ");"
}

func CreateSchema(ctx context.Context, db *sql.DB, d Dialect, schema Schema) error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}
	if schema.Name == "" {
		return fmt.Errorf("schema name is empty")
	}

	sqlStr := schemaToCreationString(d, schema)

	if _, err := db.ExecContext(ctx, sqlStr); err != nil {
		return fmt.Errorf("create schema %q failed: %w\nSQL: %s", schema.Name, err, sqlStr)
	}

	return nil
}
