package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/realty"
	"github.com/etnz/realty/date"
	"github.com/etnz/realty/source"
)

// sourceFlags locates the input tables of a report. See the "sources" topic
// for the syntax.
type sourceFlags struct {
	tenancy, ledger, leases, previous, current string
}

func (s *sourceFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.tenancy, "rent-roll", "", "Rent roll source (property_id, unit_id, is_occupied, monthly_rent)")
	f.StringVar(&s.ledger, "ledger", "", "Receivables ledger source (tenant_id, days_past_due, balance)")
	f.StringVar(&s.leases, "leases", "", "Lease list source (lease_id, end_date)")
	f.StringVar(&s.previous, "previous", "", "P&L source of the previous period (account, amount)")
	f.StringVar(&s.current, "current", "", "P&L source of the current period (account, amount)")
}

func (s *sourceFlags) empty() bool {
	return s.tenancy == "" && s.ledger == "" && s.leases == "" && s.previous == "" && s.current == ""
}

// load reads every source that is set.
func (s *sourceFlags) load(ctx context.Context) (realty.Inputs, error) {
	var in realty.Inputs
	for _, e := range []struct {
		spec   string
		schema realty.Schema
		dst    **realty.Table
		name   string
	}{
		{s.tenancy, realty.TenancySchema, &in.Tenancy, "rent roll"},
		{s.ledger, realty.LedgerSchema, &in.Ledger, "ledger"},
		{s.leases, realty.LeaseSchema, &in.Leases, "leases"},
		{s.previous, realty.PnLSchema, &in.PnLPrevious, "previous P&L"},
		{s.current, realty.PnLSchema, &in.PnLCurrent, "current P&L"},
	} {
		if e.spec == "" {
			continue
		}
		t, err := source.Load(ctx, e.spec, e.schema)
		if err != nil {
			return in, fmt.Errorf("loading %s: %w", e.name, err)
		}
		*e.dst = t
	}
	return in, nil
}

// schemeFlags hold the parameters of the KPIs. Commands only register the
// flags they use.
type schemeFlags struct {
	asOf     string
	aging    string
	horizons string
	period   string
}

func (s *schemeFlags) setDateFlag(f *flag.FlagSet, usage string) {
	f.StringVar(&s.asOf, "d", date.Today().String(), usage+" See the dates topic for supported formats.")
}

func (s *schemeFlags) setAgingFlag(f *flag.FlagSet) {
	f.StringVar(&s.aging, "aging", config.AgingBands, "Aging bands: 4 (0-30 to 90+), 5 (0-30 to 120+) or upper bounds in days such as 30,60,90")
}

func (s *schemeFlags) setHorizonFlag(f *flag.FlagSet) {
	f.StringVar(&s.horizons, "horizons", config.HorizonMode, "Expiry horizons: disjoint (30d counts 0-30, 60d counts 31-60...) or cumulative (60d counts 0-60)")
}

func (s *schemeFlags) setPeriodFlag(f *flag.FlagSet) {
	f.StringVar(&s.period, "period", "", "Period of the current P&L containing the -d date: monthly, quarterly or yearly. Used to label the bridge")
}

// options converts the flags into report options.
func (s *schemeFlags) options() (realty.Options, error) {
	var opts realty.Options

	on := date.Today()
	if s.asOf != "" {
		d, err := date.Parse(s.asOf)
		if err != nil {
			return opts, fmt.Errorf("invalid date %q: %w", s.asOf, err)
		}
		on = d
	}
	opts.AsOf = on

	if s.aging != "" {
		scheme, err := realty.ParseAgingScheme(s.aging)
		if err != nil {
			return opts, err
		}
		opts.Aging = scheme
	}

	if s.horizons != "" {
		mode, err := realty.ParseHorizonMode(s.horizons)
		if err != nil {
			return opts, err
		}
		scheme, err := realty.NewHorizonScheme(realty.DisjointHorizons.Days, mode)
		if err != nil {
			return opts, err
		}
		opts.Horizons = scheme
	}

	if s.period != "" {
		p, err := date.ParsePeriod(s.period)
		if err != nil {
			return opts, err
		}
		opts.Period = date.NewRange(on, p)
	}
	return opts, nil
}
