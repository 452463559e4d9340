package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/realty"
	"github.com/etnz/realty/date"
)

func TestSchemeFlags_Options(t *testing.T) {
	s := schemeFlags{asOf: "2025-06-15", aging: "5", horizons: "cumulative", period: "monthly"}
	opts, err := s.options()
	if err != nil {
		t.Fatalf("options() unexpected error: %v", err)
	}
	if opts.AsOf != date.New(2025, 6, 15) {
		t.Errorf("AsOf = %v, want 2025-06-15", opts.AsOf)
	}
	if got := opts.Aging.String(); got != realty.FiveBand.String() {
		t.Errorf("Aging = %s, want %s", got, realty.FiveBand)
	}
	if opts.Horizons.Mode != realty.Cumulative {
		t.Errorf("Horizons.Mode = %v, want cumulative", opts.Horizons.Mode)
	}
	if want := (date.Range{From: date.New(2025, 6, 1), To: date.New(2025, 6, 30)}); opts.Period != want {
		t.Errorf("Period = %v, want %v", opts.Period, want)
	}
}

func TestSchemeFlags_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		flags schemeFlags
	}{
		{"ambiguous date", schemeFlags{asOf: "01/02/2025"}},
		{"bad aging", schemeFlags{aging: "60,30"}},
		{"bad horizons", schemeFlags{horizons: "rolling"}},
		{"bad period", schemeFlags{period: "fortnight"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.flags.options(); err == nil {
				t.Errorf("options(%+v) should fail", tc.flags)
			}
		})
	}
}

func TestSourceFlags_Load(t *testing.T) {
	dir := t.TempDir()
	leases := filepath.Join(dir, "leases.csv")
	if err := os.WriteFile(leases, []byte("lease_id,end_date\nL1,2025-07-15\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := sourceFlags{leases: leases}
	if s.empty() {
		t.Fatal("empty() = true with a lease source")
	}
	in, err := s.load(context.Background())
	if err != nil {
		t.Fatalf("load() unexpected error: %v", err)
	}
	if in.Leases == nil || in.Leases.Len() != 1 || in.Tenancy != nil {
		t.Errorf("load() = %+v, want only one lease", in)
	}

	s = sourceFlags{ledger: filepath.Join(dir, "missing.csv")}
	if _, err := s.load(context.Background()); err == nil {
		t.Error("load() of a missing file should fail")
	}
}
