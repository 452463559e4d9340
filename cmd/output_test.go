package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/realty"
	"github.com/etnz/realty/date"
)

func pnl(t *testing.T, rows ...[]any) *realty.Table {
	t.Helper()
	tb := realty.NewTable("account", "amount")
	for _, r := range rows {
		if err := tb.Append(r...); err != nil {
			t.Fatal(err)
		}
	}
	return tb
}

func bridgeReport(t *testing.T) *realty.Report {
	t.Helper()
	in := realty.Inputs{
		PnLPrevious: pnl(t, []any{"Rent", 1000}, []any{"Repairs", -200}),
		PnLCurrent:  pnl(t, []any{"Rent", 1100}, []any{"Repairs", -220}),
	}
	r, err := realty.NewReport(in, realty.Options{AsOf: date.New(2025, 6, 30)})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func fullReport(t *testing.T) *realty.Report {
	t.Helper()
	ledger := realty.NewTable("tenant_id", "days_past_due", "balance")
	ledger.Append("T1", 10, 100)
	ledger.Append("T2", 95, 50)
	in := realty.Inputs{
		Ledger:      ledger,
		PnLPrevious: pnl(t, []any{"Rent", 1000}),
		PnLCurrent:  pnl(t, []any{"Rent", 1100}),
	}
	r, err := realty.NewReport(in, realty.Options{AsOf: date.New(2025, 6, 30), Aging: realty.FourBand})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, bridgeReport(t)); err != nil {
		t.Fatalf("WriteJSON() unexpected error: %v", err)
	}
	want := `[
  {
    "account": "Rent",
    "delta": 100,
    "direction": "up"
  },
  {
    "account": "Repairs",
    "delta": -20,
    "direction": "down"
  }
]
`
	if got := b.String(); got != want {
		t.Errorf("WriteJSON() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteJSON_Sections(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, fullReport(t)); err != nil {
		t.Fatalf("WriteJSON() unexpected error: %v", err)
	}
	var got map[string][]map[string]any
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, b.String())
	}
	if len(got) != 2 || len(got["aging"]) != 4 || len(got["bridge"]) != 1 {
		t.Errorf("WriteJSON() = %v, want 4 aging rows and 1 bridge row", got)
	}
}

func TestSectionPath(t *testing.T) {
	testCases := []struct {
		output  string
		several bool
		want    string
	}{
		{"kpi.parquet", false, "kpi.parquet"},
		{"kpi.parquet", true, "kpi-aging.parquet"},
		{"out/kpi", true, "out/kpi-aging"},
	}
	for _, tc := range testCases {
		if got := sectionPath(tc.output, "aging", tc.several); got != tc.want {
			t.Errorf("sectionPath(%q, %v) = %q, want %q", tc.output, tc.several, got, tc.want)
		}
	}
}

func TestWriteTables(t *testing.T) {
	dir := t.TempDir()

	single := filepath.Join(dir, "bridge.arrow")
	if err := WriteTables(single, FormatArrow, bridgeReport(t)); err != nil {
		t.Fatalf("WriteTables() unexpected error: %v", err)
	}
	if _, err := os.Stat(single); err != nil {
		t.Errorf("missing %s: %v", single, err)
	}

	if err := WriteTables(filepath.Join(dir, "kpi.parquet"), FormatParquet, fullReport(t)); err != nil {
		t.Fatalf("WriteTables() unexpected error: %v", err)
	}
	for _, name := range []string{"kpi-aging.parquet", "kpi-bridge.parquet"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestOutputFlags_Validate(t *testing.T) {
	testCases := []struct {
		flags   outputFlags
		wantErr bool
	}{
		{outputFlags{format: FormatMarkdown}, false},
		{outputFlags{format: FormatJSON, output: "kpi.json"}, false},
		{outputFlags{format: FormatParquet, output: "kpi.parquet"}, false},
		{outputFlags{format: FormatParquet}, true},
		{outputFlags{format: FormatArrow}, true},
		{outputFlags{format: "xlsx"}, true},
	}
	for _, tc := range testCases {
		err := tc.flags.validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("validate(%+v) error = %v, wantErr %v", tc.flags, err, tc.wantErr)
		}
	}
}
