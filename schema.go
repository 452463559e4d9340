package realty

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/realty/date"
	"github.com/shopspring/decimal"
)

// Kind is the type a column is read as.
type Kind int

const (
	Text   Kind = iota // string
	Flag               // bool, coerced to {0,1}
	Int                // whole number
	Number             // decimal.Decimal
	Ratio              // float64
	Day                // date.Date
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Flag:
		return "flag"
	case Int:
		return "int"
	case Number:
		return "number"
	case Ratio:
		return "ratio"
	case Day:
		return "date"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Column is a named, typed column of a schema.
type Column struct {
	Name string
	Kind Kind
}

// Schema is an ordered list of columns.
type Schema []Column

// Names returns the column names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// Kind returns the kind of the named column.
func (s Schema) Kind(name string) (Kind, bool) {
	for _, c := range s {
		if c.Name == name {
			return c.Kind, true
		}
	}
	return Text, false
}

// Input schemas.
var (
	TenancySchema = Schema{{"property_id", Text}, {"unit_id", Text}, {"is_occupied", Flag}, {"monthly_rent", Number}}
	LedgerSchema  = Schema{{"tenant_id", Text}, {"days_past_due", Int}, {"balance", Number}}
	LeaseSchema   = Schema{{"lease_id", Text}, {"end_date", Day}}
	PnLSchema     = Schema{{"account", Text}, {"amount", Number}}
)

// Output schemas.
var (
	OccupancySchema = Schema{{"property_id", Text}, {"occupancy_rate", Ratio}, {"avg_rent", Number}, {"total_monthly_rent", Number}}
	AgingSchema     = Schema{{"bucket", Text}, {"amount", Number}}
	ExpirySchema    = Schema{{"horizon", Text}, {"expiring", Int}}
	BridgeSchema    = Schema{{"account", Text}, {"delta", Number}, {"direction", Text}}
)

// toText reads v as a string identifier. Numbers are accepted since loaders
// often type identifiers like "101" as numbers.
func toText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	case int, int32, int64, uint, uint32, uint64:
		return fmt.Sprint(x), true
	default:
		return "", false
	}
}

// toFlag coerces v to {0,1}.
func toFlag(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		return b, err == nil
	}
	if i, ok := toInt(v); ok {
		return i != 0, true
	}
	return false, false
}

// Bounds of int as decimals, for range checks that must not wrap.
var (
	minInt = decimal.NewFromInt(math.MinInt)
	maxInt = decimal.NewFromInt(math.MaxInt)
)

// toInt reads v as a whole number. Values out of the range of int are
// rejected rather than wrapped.
func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint32:
		if uint64(x) > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case float32:
		return toInt(float64(x))
	case float64:
		// NaN fails the Trunc test. -MinInt is exact, MaxInt is not.
		if x != math.Trunc(x) || x < math.MinInt || x >= -math.MinInt {
			return 0, false
		}
		return int(x), true
	case decimal.Decimal:
		if !x.IsInteger() || x.LessThan(minInt) || x.GreaterThan(maxInt) {
			return 0, false
		}
		return int(x.IntPart()), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(x))
		return i, err == nil
	default:
		return 0, false
	}
}

func toNumber(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(x), true
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int32:
		return decimal.NewFromInt32(x), true
	case int64:
		return decimal.NewFromInt(x), true
	case uint:
		return decimal.NewFromUint64(uint64(x)), true
	case uint32:
		return decimal.NewFromUint64(uint64(x)), true
	case uint64:
		return decimal.NewFromUint64(x), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}

// ParseDate normalizes a date.Date, a time.Time or an unambiguous date
// string into a calendar date.
func ParseDate(v any) (date.Date, error) {
	switch x := v.(type) {
	case date.Date:
		return x, nil
	case time.Time:
		return date.Of(x), nil
	case string:
		d, err := date.Parse(x)
		if err != nil {
			return date.Date{}, &AmbiguousDateError{Value: x, Err: err}
		}
		return d, nil
	default:
		return date.Date{}, &AmbiguousDateError{Value: v}
	}
}

// Convert reads v as the kind of column c, for loaders that type their
// cells early. row is only used in errors. Nil stays nil.
func Convert(c Column, row int, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	var out any
	var ok bool
	switch c.Kind {
	case Text:
		out, ok = toText(v)
	case Flag:
		out, ok = toFlag(v)
	case Int:
		out, ok = toInt(v)
	case Number:
		out, ok = toNumber(v)
	case Ratio:
		var d decimal.Decimal
		d, ok = toNumber(v)
		out = d.InexactFloat64()
	case Day:
		d, err := ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", c.Name, row, err)
		}
		return d, nil
	}
	if !ok {
		return nil, &InputShapeError{Column: c.Name, Row: row, Want: c.Kind, Got: v}
	}
	return out, nil
}
