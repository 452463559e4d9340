package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a currency, printed the way the currency is usually
// written.
type Money struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// M returns v as a Money in currency cur.
func M(v decimal.Decimal, cur string) Money { return Money{Value: v, Currency: cur} }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.Currency).Currency()
}

// String returns the amount rounded to the minor unit of its currency.
func (m Money) String() string {
	cur := m.currency()
	dec := m.Value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but always prints the sign, and "-" for zero.
func (m Money) SignedString() string {
	switch {
	case m.Value.IsZero():
		return "-"
	case m.Value.IsPositive():
		return "+" + m.String()
	default:
		return m.String()
	}
}

// Percent is a ratio expressed in percent: 12.5 is 12.5%.
type Percent float64

// P converts a ratio in [0,1] to a Percent.
func P(ratio float64) Percent { return Percent(ratio * 100) }

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

// Report is the markdown view of a KPI pack. Sections whose Has flag is
// false are not rendered.
type Report struct {
	AsOf     string `json:"asOf"`
	Period   string `json:"period,omitempty"`
	Previous string `json:"previous,omitempty"`

	HasOccupancy   bool        `json:"hasOccupancy"`
	Occupancy      []Occupancy `json:"occupancy"`
	OccupancyTotal Occupancy   `json:"occupancyTotal"`

	HasAging   bool     `json:"hasAging"`
	Aging      []Bucket `json:"aging"`
	AgingTotal Money    `json:"agingTotal"`

	HasExpiry     bool      `json:"hasExpiry"`
	HorizonMode   string    `json:"horizonMode"`
	Expiry        []Horizon `json:"expiry"`
	ExpiringTotal int       `json:"expiringTotal"`

	HasBridge bool         `json:"hasBridge"`
	Bridge    []BridgeLine `json:"bridge"`

	// Sums of the line items as given, not a NOI: the account types are
	// unknown.
	TotalBefore Money `json:"totalBefore"`
	TotalAfter  Money `json:"totalAfter"`
	TotalChange Money `json:"totalChange"`
}

// Occupancy is one line of the occupancy table.
type Occupancy struct {
	PropertyID string  `json:"propertyId"`
	Units      int     `json:"units"`
	Occupied   int     `json:"occupied"`
	Rate       Percent `json:"rate"`
	AvgRent    Money   `json:"avgRent"`
	TotalRent  Money   `json:"totalRent"`
}

// Bucket is one line of the aging table.
type Bucket struct {
	Label  string  `json:"label"`
	Amount Money   `json:"amount"`
	Share  Percent `json:"share"`
}

// Horizon is one line of the lease expiry table.
type Horizon struct {
	Label    string `json:"label"`
	Expiring int    `json:"expiring"`
}

// BridgeLine is one line of the NOI bridge.
type BridgeLine struct {
	Account   string `json:"account"`
	Previous  Money  `json:"previous"`
	Current   Money  `json:"current"`
	Delta     Money  `json:"delta"`
	Direction string `json:"direction"`
}
