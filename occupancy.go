package realty

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// TenancyRecord is one leased or vacant unit of the rent roll.
type TenancyRecord struct {
	PropertyID  string
	UnitID      string
	Occupied    bool
	MonthlyRent decimal.Decimal
}

// PropertyOccupancy is the rent roll rollup of a single property.
type PropertyOccupancy struct {
	PropertyID       string
	Units            int
	Occupied         int
	OccupancyRate    float64 // ratio in [0,1]
	AvgRent          decimal.Decimal
	TotalMonthlyRent decimal.Decimal
}

// Occupancy rolls the rent roll up per property, in order of first
// appearance. Average rent is taken over all units, vacant included.
func Occupancy(records []TenancyRecord) []PropertyOccupancy {
	groups := lo.GroupBy(records, func(r TenancyRecord) string { return r.PropertyID })
	ids := lo.Uniq(lo.Map(records, func(r TenancyRecord, _ int) string { return r.PropertyID }))

	out := make([]PropertyOccupancy, 0, len(ids))
	for _, id := range ids {
		units := groups[id] // never empty: id comes from a record.
		p := PropertyOccupancy{PropertyID: id, Units: len(units), TotalMonthlyRent: decimal.Zero}
		for _, u := range units {
			if u.Occupied {
				p.Occupied++
			}
			p.TotalMonthlyRent = p.TotalMonthlyRent.Add(u.MonthlyRent)
		}
		p.OccupancyRate = float64(p.Occupied) / float64(p.Units)
		p.AvgRent = p.TotalMonthlyRent.Div(decimal.NewFromInt(int64(p.Units)))
		out = append(out, p)
	}
	return out
}

// OccupancyTotals is the portfolio-wide rollup of a rent roll.
type OccupancyTotals struct {
	Properties       int
	Units            int
	Occupied         int
	OccupancyRate    float64
	TotalMonthlyRent decimal.Decimal
}

// Totals sums per-property rollups. The rate is unit weighted, zero for an
// empty rent roll.
func Totals(props []PropertyOccupancy) OccupancyTotals {
	t := OccupancyTotals{Properties: len(props), TotalMonthlyRent: decimal.Zero}
	for _, p := range props {
		t.Units += p.Units
		t.Occupied += p.Occupied
		t.TotalMonthlyRent = t.TotalMonthlyRent.Add(p.TotalMonthlyRent)
	}
	if t.Units > 0 {
		t.OccupancyRate = float64(t.Occupied) / float64(t.Units)
	}
	return t
}

// DecodeTenancy reads a rent roll table.
func DecodeTenancy(t *Table) ([]TenancyRecord, error) {
	if err := t.Require(TenancySchema); err != nil {
		return nil, err
	}
	records := make([]TenancyRecord, 0, t.Len())
	for _, row := range t.Rows() {
		var r TenancyRecord
		var err error
		if r.PropertyID, err = row.Text("property_id"); err != nil {
			return nil, err
		}
		if r.UnitID, err = row.Text("unit_id"); err != nil {
			return nil, err
		}
		if r.Occupied, err = row.Flag("is_occupied"); err != nil {
			return nil, err
		}
		if r.MonthlyRent, err = row.Decimal("monthly_rent"); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// OccupancyTable encodes rollups with the OccupancySchema columns.
func OccupancyTable(props []PropertyOccupancy) *Table {
	t := NewTable(OccupancySchema.Names()...)
	for _, p := range props {
		t.mustAppend(p.PropertyID, p.OccupancyRate, p.AvgRent, p.TotalMonthlyRent)
	}
	return t
}

// SummarizeOccupancy returns one row per property of the rent roll with its
// occupancy_rate, avg_rent and total_monthly_rent.
func SummarizeOccupancy(tenancy *Table) (*Table, error) {
	records, err := DecodeTenancy(tenancy)
	if err != nil {
		return nil, err
	}
	return OccupancyTable(Occupancy(records)), nil
}
