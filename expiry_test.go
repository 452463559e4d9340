package realty

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/realty/date"
)

// expiring reads the counts of an expiry table, keyed by horizon.
func expiring(t *testing.T, out *Table) map[string]int {
	t.Helper()
	got := make(map[string]int)
	for _, row := range out.Rows() {
		h, _ := row.Text("horizon")
		n, err := row.Int("expiring")
		if err != nil {
			t.Fatal(err)
		}
		got[h] = n
	}
	return got
}

func TestCountExpiries(t *testing.T) {
	asOf := date.New(2025, time.August, 1)
	leases := table(t, LeaseSchema.Names(),
		[]any{"L1", asOf.Add(29)},
		[]any{"L2", asOf.Add(31)},
		[]any{"L3", asOf.Add(400)},
		[]any{"L4", asOf.Add(-5)},
	)
	out, err := CountExpiries(leases, asOf, DisjointHorizons)
	if err != nil {
		t.Fatalf("CountExpiries() error = %v", err)
	}
	want := map[string]int{"30d": 1, "60d": 1, "90d": 0, "180d": 0}
	got := expiring(t, out)
	for h, n := range want {
		if got[h] != n {
			t.Errorf("expiring[%s] = %d, want %d", h, got[h], n)
		}
	}
	if labels := textCol(t, out, "horizon"); len(labels) != 4 || labels[0] != "30d" || labels[3] != "180d" {
		t.Errorf("horizons = %v, want ascending 30d..180d", labels)
	}
}

func TestCountExpiries_TextDates(t *testing.T) {
	leases := table(t, LeaseSchema.Names(),
		[]any{"L1", "2025-09-01"},
		[]any{"L2", "2025-10-01"},
		[]any{"L3", "2026-01-01"},
		[]any{"L4", "2025-08-20"},
		[]any{"L5", "2025-08-01"},
	)
	testCases := []struct {
		name   string
		scheme HorizonScheme
		want   map[string]int
	}{
		// days until: 31, 61, 153, 19 and 0 (already expired).
		{"disjoint", DisjointHorizons, map[string]int{"30d": 1, "60d": 1, "90d": 1, "180d": 1}},
		{"cumulative", CumulativeHorizons, map[string]int{"30d": 1, "60d": 2, "90d": 3, "180d": 4}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := CountExpiries(leases, "2025-08-01", tc.scheme)
			if err != nil {
				t.Fatalf("CountExpiries() error = %v", err)
			}
			got := expiring(t, out)
			for h, n := range tc.want {
				if got[h] != n {
					t.Errorf("expiring[%s] = %d, want %d", h, got[h], n)
				}
			}
		})
	}
}

func TestCountExpiries_Boundaries(t *testing.T) {
	asOf := date.New(2025, time.December, 15)
	var rows [][]any
	for i, days := range []int{0, 30, 60, 90, 180, 181} {
		rows = append(rows, []any{i, asOf.Add(days)})
	}
	out, err := CountExpiries(table(t, LeaseSchema.Names(), rows...), asOf.Time(), DisjointHorizons)
	if err != nil {
		t.Fatalf("CountExpiries() error = %v", err)
	}
	want := map[string]int{"30d": 1, "60d": 1, "90d": 1, "180d": 1}
	got := expiring(t, out)
	for h, n := range want {
		if got[h] != n {
			t.Errorf("expiring[%s] = %d, want %d", h, got[h], n)
		}
	}
}

func TestCountExpiries_Timestamps(t *testing.T) {
	leases := table(t, LeaseSchema.Names(),
		[]any{"L1", "2025-09-01 00:00:00"},
		[]any{"L2", "2025-08-20T18:30:00"},
	)
	out, err := CountExpiries(leases, "2025-08-01 09:00:00", DisjointHorizons)
	if err != nil {
		t.Fatalf("CountExpiries() error = %v", err)
	}
	want := map[string]int{"30d": 1, "60d": 1, "90d": 0, "180d": 0}
	got := expiring(t, out)
	for h, n := range want {
		if got[h] != n {
			t.Errorf("expiring[%s] = %d, want %d", h, got[h], n)
		}
	}
}

func TestCountExpiries_Empty(t *testing.T) {
	out, err := CountExpiries(NewTable(LeaseSchema.Names()...), "2025-08-01", DisjointHorizons)
	if err != nil {
		t.Fatalf("CountExpiries() error = %v", err)
	}
	if out.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", out.Len())
	}
	for h, n := range expiring(t, out) {
		if n != 0 {
			t.Errorf("expiring[%s] = %d, want 0", h, n)
		}
	}
}

func TestCountExpiries_Errors(t *testing.T) {
	leases := table(t, LeaseSchema.Names(), []any{"L1", "2025-09-01"})

	if _, err := CountExpiries(leases, "08/01/2025", DisjointHorizons); !errors.Is(err, ErrAmbiguousDate) {
		t.Errorf("ambiguous as of: error = %v, want ErrAmbiguousDate", err)
	}
	bad := table(t, LeaseSchema.Names(), []any{"L1", "1/9/2025"})
	if _, err := CountExpiries(bad, "2025-08-01", DisjointHorizons); !errors.Is(err, ErrAmbiguousDate) {
		t.Errorf("ambiguous end date: error = %v, want ErrAmbiguousDate", err)
	}
	noEnd := table(t, []string{"lease_id"}, []any{"L1"})
	if _, err := CountExpiries(noEnd, "2025-08-01", DisjointHorizons); !errors.Is(err, ErrInputShape) {
		t.Errorf("missing end_date: error = %v, want ErrInputShape", err)
	}
}

func TestCountExpiries_InvalidScheme(t *testing.T) {
	leases := table(t, LeaseSchema.Names(), []any{"L1", "2025-09-01"})
	if _, err := CountExpiries(leases, "2025-08-01", HorizonScheme{}); err == nil {
		t.Error("CountExpiries() with no horizon should fail")
	}
}
