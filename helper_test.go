package realty

import (
	"testing"

	"github.com/shopspring/decimal"
)

// D is a helper for test to create exact amounts from const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// table builds a table from its columns and rows, failing the test on arity errors.
func table(t *testing.T, columns []string, rows ...[]any) *Table {
	t.Helper()
	tb := NewTable(columns...)
	for _, r := range rows {
		if err := tb.Append(r...); err != nil {
			t.Fatalf("Append(%v) error = %v", r, err)
		}
	}
	return tb
}

// decimalCol reads a column of decimals.
func decimalCol(t *testing.T, tb *Table, name string) []decimal.Decimal {
	t.Helper()
	var out []decimal.Decimal
	for _, row := range tb.Rows() {
		d, err := row.Decimal(name)
		if err != nil {
			t.Fatalf("Decimal(%q) error = %v", name, err)
		}
		out = append(out, d)
	}
	return out
}

// textCol reads a column of strings.
func textCol(t *testing.T, tb *Table, name string) []string {
	t.Helper()
	var out []string
	for _, row := range tb.Rows() {
		s, err := row.Text(name)
		if err != nil {
			t.Fatalf("Text(%q) error = %v", name, err)
		}
		out = append(out, s)
	}
	return out
}
