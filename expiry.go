package realty

import "github.com/etnz/realty/date"

// LeaseRecord is a lease and its end date.
type LeaseRecord struct {
	LeaseID string
	EndDate date.Date
}

// HorizonCount is the number of leases expiring within one horizon.
type HorizonCount struct {
	Label    string
	Expiring int
}

// Expiries counts the leases ending in each horizon of the scheme, relative
// to asOf. Leases ending on or before asOf have already expired and are not
// counted, nor are leases ending after the last horizon. Every horizon is
// returned, in ascending order.
func Expiries(leases []LeaseRecord, asOf date.Date, scheme HorizonScheme) []HorizonCount {
	counts := make([]HorizonCount, len(scheme.Days))
	for i, l := range scheme.Labels() {
		counts[i].Label = l
	}
	for _, l := range leases {
		for _, i := range scheme.Locate(l.EndDate.DaysSince(asOf)) {
			counts[i].Expiring++
		}
	}
	return counts
}

// DecodeLeases reads a lease table. End dates may be date.Date, time.Time
// or unambiguous text.
func DecodeLeases(t *Table) ([]LeaseRecord, error) {
	if err := t.Require(Schema{{"end_date", Day}}); err != nil {
		return nil, err
	}
	leases := make([]LeaseRecord, 0, t.Len())
	for _, row := range t.Rows() {
		var l LeaseRecord
		var err error
		if t.Has("lease_id") {
			if l.LeaseID, err = row.Text("lease_id"); err != nil {
				return nil, err
			}
		}
		if l.EndDate, err = row.Date("end_date"); err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}
	return leases, nil
}

// ExpiryTable encodes counts with the ExpirySchema columns.
func ExpiryTable(counts []HorizonCount) *Table {
	t := NewTable(ExpirySchema.Names()...)
	for _, c := range counts {
		t.mustAppend(c.Label, c.Expiring)
	}
	return t
}

// CountExpiries returns one row per horizon of scheme with the number of
// leases expiring in it. asOf is a date.Date, a time.Time or an unambiguous
// date string like "2025-08-01".
func CountExpiries(leases *Table, asOf any, scheme HorizonScheme) (*Table, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	ref, err := ParseDate(asOf)
	if err != nil {
		return nil, err
	}
	records, err := DecodeLeases(leases)
	if err != nil {
		return nil, err
	}
	return ExpiryTable(Expiries(records, ref, scheme)), nil
}
