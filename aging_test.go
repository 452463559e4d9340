package realty

import (
	"errors"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

var ledgerColumns = LedgerSchema.Names()

func TestBucketizeAging(t *testing.T) {
	ledger := table(t, ledgerColumns,
		[]any{"t1", 10, 100.0},
		[]any{"t2", 45, 50.0},
		[]any{"t3", 70, 20.0},
		[]any{"t4", 200, 10.0},
	)
	out, err := BucketizeAging(ledger, FourBand)
	if err != nil {
		t.Fatalf("BucketizeAging() error = %v", err)
	}
	if got := textCol(t, out, "bucket"); !slices.Equal(got, []string{"0-30", "31-60", "61-90", "90+"}) {
		t.Errorf("buckets = %v", got)
	}
	want := []decimal.Decimal{D(100), D(50), D(20), D(10)}
	got := decimalCol(t, out, "amount")
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("amount[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if sum := decimal.Sum(got[0], got[1:]...); !sum.Equal(D(180)) {
		t.Errorf("sum of amounts = %v, want 180", sum)
	}
}

func TestBucketizeAging_FixedLabels(t *testing.T) {
	testCases := []struct {
		name   string
		ledger *Table
		scheme AgingScheme
		want   []string
	}{
		{"empty four bands", NewTable(ledgerColumns...), FourBand, []string{"0", "0", "0", "0"}},
		{"empty five bands", NewTable(ledgerColumns...), FiveBand, []string{"0", "0", "0", "0", "0"}},
		{
			name:   "zero days and a credit",
			ledger: table(t, ledgerColumns, []any{"t1", 0, 75.5}, []any{"t2", 95, -20}, []any{"t3", 150, 40}),
			scheme: FiveBand,
			want:   []string{"75.5", "0", "0", "-20", "40"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := BucketizeAging(tc.ledger, tc.scheme)
			if err != nil {
				t.Fatalf("BucketizeAging() error = %v", err)
			}
			if got := textCol(t, out, "bucket"); !slices.Equal(got, tc.scheme.Labels) {
				t.Errorf("buckets = %v, want %v", got, tc.scheme.Labels)
			}
			var got []string
			for _, d := range decimalCol(t, out, "amount") {
				got = append(got, d.String())
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("amounts = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBucketizeAging_Conservation(t *testing.T) {
	days := []int{0, 3, 30, 31, 59, 60, 61, 89, 90, 91, 119, 120, 121, 365, 4000}
	ledger := NewTable(ledgerColumns...)
	total := decimal.Zero
	for i, d := range days {
		balance := D(float64(i*17%11) - 3.25)
		total = total.Add(balance)
		if err := ledger.Append("t", d, balance); err != nil {
			t.Fatal(err)
		}
	}
	custom, err := NewAgingScheme([]int{-1, 15, 45}, []string{"fresh", "late"})
	if err != nil {
		t.Fatal(err)
	}
	for _, scheme := range []AgingScheme{FourBand, FiveBand, custom} {
		out, err := BucketizeAging(ledger, scheme)
		if err != nil {
			t.Fatalf("BucketizeAging(%v) error = %v", scheme, err)
		}
		amounts := decimalCol(t, out, "amount")
		if sum := decimal.Sum(decimal.Zero, amounts...); !sum.Equal(total) {
			t.Errorf("scheme %v: sum of buckets = %v, want %v", scheme, sum, total)
		}
	}
}

func TestBucketizeAging_AmountColumn(t *testing.T) {
	ledger := table(t, []string{"tenant_id", "days_past_due", "amount"}, []any{"t1", 40, "12.30"})
	out, err := BucketizeAging(ledger, FourBand)
	if err != nil {
		t.Fatalf("BucketizeAging() error = %v", err)
	}
	if got := decimalCol(t, out, "amount")[1]; !got.Equal(D(12.3)) {
		t.Errorf("31-60 amount = %v, want 12.3", got)
	}
}

func TestBucketizeAging_ShapeErrors(t *testing.T) {
	testCases := []struct {
		name   string
		ledger *Table
	}{
		{"no balance", table(t, []string{"tenant_id", "days_past_due"}, []any{"t1", 1})},
		{"no days", table(t, []string{"tenant_id", "balance"}, []any{"t1", 1})},
		{"text balance", table(t, ledgerColumns, []any{"t1", 1, "n/a"})},
		{"fractional days", table(t, ledgerColumns, []any{"t1", 1.5, 10})},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BucketizeAging(tc.ledger, FourBand); !errors.Is(err, ErrInputShape) {
				t.Errorf("BucketizeAging() error = %v, want ErrInputShape", err)
			}
		})
	}
}

func TestBucketizeAging_InvalidScheme(t *testing.T) {
	ledger := table(t, ledgerColumns, []any{"T1", 120, 100})
	broken := AgingScheme{Edges: []int{-1, 30}, Labels: FourBand.Labels}
	if out, err := BucketizeAging(ledger, broken); err == nil {
		t.Errorf("BucketizeAging() with %d edges for 4 labels = %v, want an error", len(broken.Edges), out)
	}
}
