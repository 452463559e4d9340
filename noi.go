package realty

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// PnLLine is the amount of one account over a period.
type PnLLine struct {
	Account string
	Amount  decimal.Decimal
}

// BridgeLine is the change of one account between two periods.
type BridgeLine struct {
	Account   string
	Previous  decimal.Decimal
	Current   decimal.Decimal
	Delta     decimal.Decimal
	Direction string // "up" when Delta >= 0, "down" otherwise
}

const (
	Up   = "up"
	Down = "down"
)

// Bridge aligns the accounts of two periods and computes current minus
// previous for each. An account missing from a period counts as zero in it;
// repeated accounts within a period are summed.
//
// Lines are sorted by decreasing absolute delta. Ties keep the union order:
// the accounts of prev as they appear when both periods list the same
// accounts in the same order, the accounts sorted by name otherwise.
//
// Direction is the sign of the change only; whether it improves NOI depends
// on the account type, which is the caller's business.
func Bridge(prev, curr []PnLLine) []BridgeLine {
	var lines []BridgeLine
	index := make(map[string]int)
	line := func(account string) *BridgeLine {
		i, ok := index[account]
		if !ok {
			i = len(lines)
			index[account] = i
			lines = append(lines, BridgeLine{Account: account, Previous: decimal.Zero, Current: decimal.Zero})
		}
		return &lines[i]
	}
	for _, p := range prev {
		l := line(p.Account)
		l.Previous = l.Previous.Add(p.Amount)
	}
	for _, c := range curr {
		l := line(c.Account)
		l.Current = l.Current.Add(c.Amount)
	}

	if !slices.Equal(accounts(prev), accounts(curr)) {
		slices.SortStableFunc(lines, func(a, b BridgeLine) int { return strings.Compare(a.Account, b.Account) })
	}
	for i := range lines {
		l := &lines[i]
		l.Delta = l.Current.Sub(l.Previous)
		l.Direction = Up
		if l.Delta.IsNegative() {
			l.Direction = Down
		}
	}
	slices.SortStableFunc(lines, func(a, b BridgeLine) int {
		return b.Delta.Abs().Cmp(a.Delta.Abs())
	})
	if lines == nil {
		lines = []BridgeLine{}
	}
	return lines
}

// accounts lists the distinct accounts of lines in order of first appearance.
func accounts(lines []PnLLine) []string {
	var names []string
	for _, l := range lines {
		if !slices.Contains(names, l.Account) {
			names = append(names, l.Account)
		}
	}
	return names
}

// DecodePnL reads a profit and loss table.
func DecodePnL(t *Table) ([]PnLLine, error) {
	if err := t.Require(PnLSchema); err != nil {
		return nil, err
	}
	lines := make([]PnLLine, 0, t.Len())
	for _, row := range t.Rows() {
		var l PnLLine
		var err error
		if l.Account, err = row.Text("account"); err != nil {
			return nil, err
		}
		if l.Amount, err = row.Decimal("amount"); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// BridgeTable encodes lines with the BridgeSchema columns.
func BridgeTable(lines []BridgeLine) *Table {
	t := NewTable(BridgeSchema.Names()...)
	for _, l := range lines {
		t.mustAppend(l.Account, l.Delta, l.Direction)
	}
	return t
}

// BridgeNOI returns one row per account of either period with its delta and
// direction, sorted by decreasing absolute delta.
func BridgeNOI(prev, curr *Table) (*Table, error) {
	p, err := DecodePnL(prev)
	if err != nil {
		return nil, err
	}
	c, err := DecodePnL(curr)
	if err != nil {
		return nil, err
	}
	return BridgeTable(Bridge(p, c)), nil
}
