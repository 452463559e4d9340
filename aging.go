package realty

import "github.com/shopspring/decimal"

// LedgerEntry is an outstanding receivable of a tenant.
type LedgerEntry struct {
	TenantID    string
	DaysPastDue int
	Balance     decimal.Decimal // negative for credits
}

// AgingBucket is the arrears total of one aging band.
type AgingBucket struct {
	Label  string
	Amount decimal.Decimal
}

// Aging sums balances per band of the scheme. Every band is returned, in
// scheme order, with a zero amount when no entry falls in it. The scheme is
// assumed valid, see AgingScheme.Validate.
func Aging(entries []LedgerEntry, scheme AgingScheme) []AgingBucket {
	buckets := make([]AgingBucket, len(scheme.Labels))
	for i, l := range scheme.Labels {
		buckets[i] = AgingBucket{Label: l, Amount: decimal.Zero}
	}
	if len(buckets) == 0 {
		return buckets
	}
	for _, e := range entries {
		i := scheme.Locate(e.DaysPastDue)
		buckets[i].Amount = buckets[i].Amount.Add(e.Balance)
	}
	return buckets
}

// balanceColumn returns the column holding the balance: "balance", or
// "amount" for ledgers exported that way.
func balanceColumn(t *Table) string {
	if !t.Has("balance") && t.Has("amount") {
		return "amount"
	}
	return "balance"
}

// DecodeLedger reads an accounts-receivable table.
func DecodeLedger(t *Table) ([]LedgerEntry, error) {
	balance := balanceColumn(t)
	schema := Schema{{"days_past_due", Int}, {balance, Number}}
	if err := t.Require(schema); err != nil {
		return nil, err
	}
	entries := make([]LedgerEntry, 0, t.Len())
	for _, row := range t.Rows() {
		var e LedgerEntry
		var err error
		if t.Has("tenant_id") {
			if e.TenantID, err = row.Text("tenant_id"); err != nil {
				return nil, err
			}
		}
		if e.DaysPastDue, err = row.Int("days_past_due"); err != nil {
			return nil, err
		}
		if e.Balance, err = row.Decimal(balance); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// AgingTable encodes buckets with the AgingSchema columns.
func AgingTable(buckets []AgingBucket) *Table {
	t := NewTable(AgingSchema.Names()...)
	for _, b := range buckets {
		t.mustAppend(b.Label, b.Amount)
	}
	return t
}

// BucketizeAging returns exactly one row per band of scheme, in scheme
// order, with the sum of the balances of the ledger rows in that band.
func BucketizeAging(ledger *Table, scheme AgingScheme) (*Table, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	entries, err := DecodeLedger(ledger)
	if err != nil {
		return nil, err
	}
	return AgingTable(Aging(entries, scheme)), nil
}
