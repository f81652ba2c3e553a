package statement

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"listing-sync/core/utils"
	"listing-sync/feature/listings/mapping"
	"listing-sync/feature/listings/models"
)

// Format renders one listing as an INSERT for the imoveis table. It uses the
// same normalization and column list as the store and never fails.
func Format(l models.Listing) string {
	return FormatRow(mapping.Normalize(l))
}

// FormatAll renders one statement per listing, separated by newlines.
func FormatAll(listings []models.Listing) string {
	stmts := make([]string, 0, len(listings))
	for _, l := range listings {
		stmts = append(stmts, Format(l))
	}
	return strings.Join(stmts, "\n")
}

// FormatRow renders an already normalized row.
func FormatRow(row models.Row) string {
	cols := row.Columns()
	names := make([]string, len(cols))
	values := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		values[i] = Literal(c.Value)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		models.TableName, strings.Join(names, ", "), strings.Join(values, ", "))
}

// Literal renders a column value as a SQL literal. Strings are single-quoted
// with embedded quotes doubled and no other escaping.
func Literal(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return quote(v)
	case *string:
		if v == nil {
			return "NULL"
		}
		return quote(*v)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case *int:
		if v == nil {
			return "NULL"
		}
		return strconv.Itoa(*v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case *float64:
		if v == nil {
			return "NULL"
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	case time.Time:
		return quote(v.Format("2006-01-02"))
	case *time.Time:
		if v == nil {
			return "NULL"
		}
		return quote(v.Format("2006-01-02"))
	case driver.Valuer:
		val, err := v.Value()
		if err != nil {
			return "NULL"
		}
		return Literal(val)
	default:
		return quote(utils.ToString(v))
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
