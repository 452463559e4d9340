package realty

import (
	"testing"

	"github.com/etnz/realty/date"
)

// TestKPIs_Pure runs every KPI twice on the same inputs: the inputs must be
// left as they were and both runs must agree.
func TestKPIs_Pure(t *testing.T) {
	rentRoll := table(t, rentRollColumns,
		[]any{"A", "A-1", 1, 1000},
		[]any{"A", "A-2", "0", "950.50"},
		[]any{"B", "B-1", true, 800},
	)
	ledger := table(t, ledgerColumns,
		[]any{"T1", 10, 100},
		[]any{"T2", "45", "50.25"},
		[]any{"T3", 200, 10},
	)
	leases := table(t, LeaseSchema.Names(),
		[]any{"L1", "2025-09-01"},
		[]any{"L2", date.New(2025, 8, 20)},
		[]any{"L3", "2025-08-01 00:00:00"},
	)
	prev := table(t, pnlColumns, []any{"Taxes", 10}, []any{"Rent", 1000})
	curr := table(t, pnlColumns, []any{"Rent", 1100}, []any{"Insurance", 10})

	testCases := []struct {
		name   string
		inputs []*Table
		run    func() (*Table, error)
	}{
		{"occupancy", []*Table{rentRoll}, func() (*Table, error) { return SummarizeOccupancy(rentRoll) }},
		{"aging", []*Table{ledger}, func() (*Table, error) { return BucketizeAging(ledger, FiveBand) }},
		{"expiry", []*Table{leases}, func() (*Table, error) { return CountExpiries(leases, "2025-08-01", CumulativeHorizons) }},
		{"bridge", []*Table{prev, curr}, func() (*Table, error) { return BridgeNOI(prev, curr) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var before []*Table
			for _, in := range tc.inputs {
				before = append(before, in.Clone())
			}

			first, err := tc.run()
			if err != nil {
				t.Fatalf("first run: %v", err)
			}
			second, err := tc.run()
			if err != nil {
				t.Fatalf("second run: %v", err)
			}

			for i, in := range tc.inputs {
				if !in.Equal(before[i]) {
					t.Errorf("input %d changed by the %s run", i, tc.name)
				}
			}
			if !first.Equal(second) {
				t.Errorf("two runs differ:\n%v\n%v", first, second)
			}
		})
	}
}
