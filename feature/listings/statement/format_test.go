package statement

import (
	"strings"
	"testing"
	"time"

	"listing-sync/feature/listings/mapping"
	"listing-sync/feature/listings/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	price := 1250.5
	rooms := 2
	std := "Alto"
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "NULL"},
		{"string", "Casa", "'Casa'"},
		{"quote", "D'Ávila", "'D''Ávila'"},
		{"empty string", "", "''"},
		{"nil string", (*string)(nil), "NULL"},
		{"string ptr", &std, "'Alto'"},
		{"true", true, "TRUE"},
		{"false", false, "FALSE"},
		{"nil decimal", (*float64)(nil), "NULL"},
		{"decimal", &price, "1250.5"},
		{"large decimal", ptr(1500000.0), "1500000"},
		{"nil int", (*int)(nil), "NULL"},
		{"int", &rooms, "2"},
		{"nil date", (*time.Time)(nil), "NULL"},
		{"date", &day, "'2024-01-10'"},
		{"photos", models.PhotoList{{FileName: "it's.jpg"}}, `'[{"nome_arquivo":"it''s.jpg","tipo":"","url":"","principal":false}]'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Literal(tt.in))
		})
	}
}

func TestFormat(t *testing.T) {
	l := models.Listing{
		Code:        "AP-1",
		Title:       "Apartamento do João's",
		Street:      "Rua A",
		Number:      "10",
		City:        "X",
		SalePrice:   "0.00",
		RentPrice:   "2500",
		Bedrooms:    "0",
		Pool:        "1",
		CreatedDate: "05/03/2024",
	}

	stmt := Format(l)
	require.True(t, strings.HasPrefix(stmt, "INSERT INTO imoveis (codigo, titulo, "))
	require.True(t, strings.HasSuffix(stmt, ");"))

	values := valuesByColumn(t, stmt)
	assert.Equal(t, "'AP-1'", values["codigo"])
	assert.Equal(t, "'Apartamento do João''s'", values["titulo"])
	assert.Equal(t, "NULL", values["preco_venda"])
	assert.Equal(t, "2500", values["preco_locacao"])
	assert.Equal(t, "NULL", values["qtd_dormitorios"])
	assert.Equal(t, "TRUE", values["piscina"])
	assert.Equal(t, "FALSE", values["elevador"])
	assert.Equal(t, "'2024-03-05'", values["data_cadastro"])
	assert.Equal(t, "NULL", values["data_atualizacao"])
	assert.Equal(t, "'Rua A, 10, X'", values["endereco"])
	assert.Equal(t, "'[]'", values["fotos"])
	assert.Equal(t, "TRUE", values["ativo"])
}

func TestFormat_ColumnsMatchStore(t *testing.T) {
	row := mapping.Normalize(models.Listing{Code: "A"})
	stmt := FormatRow(row)

	head := stmt[strings.Index(stmt, "(")+1 : strings.Index(stmt, ")")]
	names := strings.Split(head, ", ")
	require.Len(t, names, len(row.Columns()))
	for i, c := range row.Columns() {
		assert.Equal(t, c.Name, names[i])
	}
}

func TestFormatAll(t *testing.T) {
	out := FormatAll([]models.Listing{{Code: "A", Title: "a"}, {Code: "B", Title: "b"}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "'A'")
	assert.Contains(t, lines[1], "'B'")

	assert.Equal(t, "", FormatAll(nil))
}

// valuesByColumn pairs column names with the rendered literals.
func valuesByColumn(t *testing.T, stmt string) map[string]string {
	t.Helper()
	open := strings.Index(stmt, "VALUES (")
	require.Positive(t, open)
	parts := splitLiterals(strings.TrimSuffix(stmt[open+len("VALUES ("):], ");"))

	cols := mapping.Normalize(models.Listing{}).Columns()
	require.Len(t, parts, len(cols))

	out := make(map[string]string, len(cols))
	for i, c := range cols {
		out[c.Name] = parts[i]
	}
	return out
}

// splitLiterals splits a VALUES list on commas outside quoted strings.
func splitLiterals(s string) []string {
	var parts []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\'':
			inQuote = !inQuote
			cur.WriteByte(ch)
		case ch == ',' && !inQuote:
			parts = append(parts, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	parts = append(parts, strings.TrimSpace(cur.String()))
	return parts
}

func ptr[T any](v T) *T { return &v }
