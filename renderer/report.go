package renderer

import (
	"github.com/etnz/realty"
	"github.com/shopspring/decimal"
)

// NewReport prepares a KPI pack for rendering, with amounts in currency cur.
func NewReport(r *realty.Report, cur string) *Report {
	v := &Report{AsOf: r.AsOf.String()}
	if !r.Period.From.IsZero() {
		v.Period = r.Period.Identifier()
		v.Previous = r.Period.Previous().Identifier()
	}

	if r.HasOccupancy {
		v.HasOccupancy = true
		for _, p := range r.Occupancy {
			v.Occupancy = append(v.Occupancy, Occupancy{
				PropertyID: p.PropertyID,
				Units:      p.Units,
				Occupied:   p.Occupied,
				Rate:       P(p.OccupancyRate),
				AvgRent:    M(p.AvgRent, cur),
				TotalRent:  M(p.TotalMonthlyRent, cur),
			})
		}
		avg := decimal.Zero
		if r.Totals.Units > 0 {
			avg = r.Totals.TotalMonthlyRent.Div(decimal.NewFromInt(int64(r.Totals.Units)))
		}
		v.OccupancyTotal = Occupancy{
			PropertyID: "Total",
			Units:      r.Totals.Units,
			Occupied:   r.Totals.Occupied,
			Rate:       P(r.Totals.OccupancyRate),
			AvgRent:    M(avg, cur),
			TotalRent:  M(r.Totals.TotalMonthlyRent, cur),
		}
	}

	if r.HasArrears {
		v.HasAging = true
		total := decimal.Zero
		for _, b := range r.Arrears {
			total = total.Add(b.Amount)
		}
		for _, b := range r.Arrears {
			var share Percent
			if !total.IsZero() {
				share = P(b.Amount.Div(total).InexactFloat64())
			}
			v.Aging = append(v.Aging, Bucket{Label: b.Label, Amount: M(b.Amount, cur), Share: share})
		}
		v.AgingTotal = M(total, cur)
	}

	if r.HasExpiries {
		v.HasExpiry = true
		v.HorizonMode = r.Horizons.Mode.String()
		for _, h := range r.Expiries {
			v.Expiry = append(v.Expiry, Horizon{Label: h.Label, Expiring: h.Expiring})
		}
		// Cumulative windows overlap, the widest one already counts every lease.
		if r.Horizons.Mode == realty.Cumulative && len(r.Expiries) > 0 {
			v.ExpiringTotal = r.Expiries[len(r.Expiries)-1].Expiring
		} else {
			for _, h := range r.Expiries {
				v.ExpiringTotal += h.Expiring
			}
		}
	}

	if r.HasBridge {
		v.HasBridge = true
		before, after := decimal.Zero, decimal.Zero
		for _, l := range r.Bridge {
			v.Bridge = append(v.Bridge, BridgeLine{
				Account:   l.Account,
				Previous:  M(l.Previous, cur),
				Current:   M(l.Current, cur),
				Delta:     M(l.Delta, cur),
				Direction: l.Direction,
			})
			before = before.Add(l.Previous)
			after = after.Add(l.Current)
		}
		v.TotalBefore = M(before, cur)
		v.TotalAfter = M(after, cur)
		v.TotalChange = M(after.Sub(before), cur)
	}
	return v
}
