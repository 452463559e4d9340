package realty

import (
	"fmt"

	"github.com/etnz/realty/date"
)

// Inputs are the tables a KPI pack is computed from. A nil table skips the
// matching section.
type Inputs struct {
	Tenancy     *Table // rent roll
	Ledger      *Table // accounts receivable
	Leases      *Table
	PnLPrevious *Table
	PnLCurrent  *Table
}

// Options configure a KPI pack.
type Options struct {
	AsOf     any        // date.Date, time.Time or date string
	Period   date.Range // current period of the NOI bridge, optional
	Aging    AgingScheme
	Horizons HorizonScheme
}

// Report is the KPI pack of a portfolio on a given date.
type Report struct {
	AsOf     date.Date
	Period   date.Range
	Aging    AgingScheme
	Horizons HorizonScheme

	Occupancy []PropertyOccupancy
	Totals    OccupancyTotals
	Arrears   []AgingBucket
	Expiries  []HorizonCount
	Bridge    []BridgeLine

	HasOccupancy, HasArrears, HasExpiries, HasBridge bool
}

// NewReport computes every section whose inputs are present. It fails on
// the first section that fails, and returns no report in that case.
func NewReport(in Inputs, opts Options) (*Report, error) {
	asOf, err := ParseDate(opts.AsOf)
	if err != nil {
		return nil, fmt.Errorf("as of date: %w", err)
	}
	r := &Report{AsOf: asOf, Period: opts.Period, Aging: opts.Aging, Horizons: opts.Horizons}

	if in.Tenancy != nil {
		records, err := DecodeTenancy(in.Tenancy)
		if err != nil {
			return nil, fmt.Errorf("rent roll: %w", err)
		}
		r.Occupancy = Occupancy(records)
		r.Totals = Totals(r.Occupancy)
		r.HasOccupancy = true
	}
	if in.Ledger != nil {
		if err := opts.Aging.Validate(); err != nil {
			return nil, fmt.Errorf("arrears: %w", err)
		}
		entries, err := DecodeLedger(in.Ledger)
		if err != nil {
			return nil, fmt.Errorf("arrears: %w", err)
		}
		r.Arrears = Aging(entries, opts.Aging)
		r.HasArrears = true
	}
	if in.Leases != nil {
		if err := opts.Horizons.Validate(); err != nil {
			return nil, fmt.Errorf("leases: %w", err)
		}
		leases, err := DecodeLeases(in.Leases)
		if err != nil {
			return nil, fmt.Errorf("leases: %w", err)
		}
		r.Expiries = Expiries(leases, asOf, opts.Horizons)
		r.HasExpiries = true
	}
	if in.PnLPrevious != nil || in.PnLCurrent != nil {
		if in.PnLPrevious == nil || in.PnLCurrent == nil {
			return nil, fmt.Errorf("noi bridge: both periods are required")
		}
		prev, err := DecodePnL(in.PnLPrevious)
		if err != nil {
			return nil, fmt.Errorf("noi bridge previous period: %w", err)
		}
		curr, err := DecodePnL(in.PnLCurrent)
		if err != nil {
			return nil, fmt.Errorf("noi bridge current period: %w", err)
		}
		r.Bridge = Bridge(prev, curr)
		r.HasBridge = true
	}
	return r, nil
}

// Tables returns the sections of the report as tables, keyed by section name.
func (r *Report) Tables() map[string]*Table {
	tables := make(map[string]*Table)
	if r.HasOccupancy {
		tables["occupancy"] = OccupancyTable(r.Occupancy)
	}
	if r.HasArrears {
		tables["aging"] = AgingTable(r.Arrears)
	}
	if r.HasExpiries {
		tables["expiry"] = ExpiryTable(r.Expiries)
	}
	if r.HasBridge {
		tables["bridge"] = BridgeTable(r.Bridge)
	}
	return tables
}
