package realty

import (
	"bytes"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/etnz/realty/date"
	"github.com/shopspring/decimal"
)

// Table is an ordered sequence of rows over an ordered set of named columns.
//
// A Table cannot be modified once built except by appending rows, so every
// KPI function can read its arguments without copying them.
type Table struct {
	columns []string
	index   map[string]int
	cells   [][]any
}

// NewTable returns an empty table with the given columns.
func NewTable(columns ...string) *Table {
	t := &Table{
		columns: slices.Clone(columns),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		t.index[c] = i
	}
	return t
}

// Append appends a row whose values are given in column order.
func (t *Table) Append(values ...any) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("got %d values for %d columns %v", len(values), len(t.columns), t.columns)
	}
	t.cells = append(t.cells, slices.Clone(values))
	return nil
}

// AppendRow appends a row given by column name. Unknown names are an error,
// missing ones are left nil.
func (t *Table) AppendRow(row map[string]any) error {
	values := make([]any, len(t.columns))
	for name, v := range row {
		i, ok := t.index[name]
		if !ok {
			return fmt.Errorf("unknown column %q, want one of %v", name, t.columns)
		}
		values[i] = v
	}
	t.cells = append(t.cells, values)
	return nil
}

// mustAppend is Append for rows built by this package, whose arity is known.
func (t *Table) mustAppend(values ...any) {
	if err := t.Append(values...); err != nil {
		panic(err)
	}
}

// Columns returns the column names in order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.cells) }

// Has reports whether the table has a column named name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row { return Row{t: t, i: i} }

// Rows iterates over the rows in order.
func (t *Table) Rows() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i := range t.cells {
			if !yield(i, Row{t: t, i: i}) {
				return
			}
		}
	}
}

// Column returns a copy of the named column values.
func (t *Table) Column(name string) ([]any, bool) {
	j, ok := t.index[name]
	if !ok {
		return nil, false
	}
	values := make([]any, len(t.cells))
	for i, row := range t.cells {
		values[i] = row[j]
	}
	return values, true
}

// Require checks that every column of s is present.
func (t *Table) Require(s Schema) error {
	for _, c := range s {
		if !t.Has(c.Name) {
			return missingColumn(c)
		}
	}
	return nil
}

// Clone returns a copy of t. Cells are copied by value.
func (t *Table) Clone() *Table {
	u := NewTable(t.columns...)
	for _, row := range t.cells {
		u.cells = append(u.cells, slices.Clone(row))
	}
	return u
}

// Equal reports whether both tables have the same columns and the same values.
// Decimals are compared by value, other cells deeply so that nested JSON
// values compare too.
func (t *Table) Equal(u *Table) bool {
	if !slices.Equal(t.columns, u.columns) || len(t.cells) != len(u.cells) {
		return false
	}
	for i := range t.cells {
		for j := range t.cells[i] {
			a, b := t.cells[i][j], u.cells[i][j]
			if da, ok := a.(decimal.Decimal); ok {
				if db, ok := b.(decimal.Decimal); !ok || !da.Equal(db) {
					return false
				}
				continue
			}
			if !reflect.DeepEqual(a, b) {
				return false
			}
		}
	}
	return true
}

// MarshalJSON encodes the table as an array of objects, keys in column order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, row := range t.cells {
		var w jsonObjectWriter
		for j, name := range t.columns {
			w.Append(name, row[j])
		}
		obj, err := w.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.Write(obj)
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}

// Row is a read-only view of a table row.
type Row struct {
	t *Table
	i int
}

// Index returns the position of the row in its table.
func (r Row) Index() int { return r.i }

// Get returns the raw value of the named column, nil if absent.
func (r Row) Get(name string) any {
	j, ok := r.t.index[name]
	if !ok {
		return nil
	}
	return r.t.cells[r.i][j]
}

func (r Row) shapeError(name string, want Kind) error {
	if !r.t.Has(name) {
		return missingColumn(Column{name, want})
	}
	return &InputShapeError{Column: name, Row: r.i, Want: want, Got: r.Get(name)}
}

// Text reads the named column as a string.
func (r Row) Text(name string) (string, error) {
	s, ok := toText(r.Get(name))
	if !ok {
		return "", r.shapeError(name, Text)
	}
	return s, nil
}

// Flag reads the named column as a boolean.
func (r Row) Flag(name string) (bool, error) {
	b, ok := toFlag(r.Get(name))
	if !ok {
		return false, r.shapeError(name, Flag)
	}
	return b, nil
}

// Int reads the named column as a whole number.
func (r Row) Int(name string) (int, error) {
	i, ok := toInt(r.Get(name))
	if !ok {
		return 0, r.shapeError(name, Int)
	}
	return i, nil
}

// Decimal reads the named column as an exact number.
func (r Row) Decimal(name string) (decimal.Decimal, error) {
	d, ok := toNumber(r.Get(name))
	if !ok {
		return decimal.Zero, r.shapeError(name, Number)
	}
	return d, nil
}

// Date reads the named column as a calendar date.
func (r Row) Date(name string) (date.Date, error) {
	if !r.t.Has(name) {
		return date.Date{}, missingColumn(Column{name, Day})
	}
	d, err := ParseDate(r.Get(name))
	if err != nil {
		return date.Date{}, fmt.Errorf("column %q row %d: %w", name, r.i, err)
	}
	return d, nil
}
