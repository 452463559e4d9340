package realty

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// AgingScheme is the ordered list of day-past-due bands used by the aging
// bucketizer. Schemes come from FourBand, FiveBand or NewAgingScheme; a
// literal must pass Validate.
//
// Band i covers the half-open interval (Edges[i], Edges[i+1]]. Values at or
// below the first edge go to the first band, values above the last edge go
// to the last band, so no ledger entry is ever left out.
type AgingScheme struct {
	Edges  []int
	Labels []string
}

var (
	// FourBand is 0-30, 31-60, 61-90 and an unbounded 90+.
	FourBand = AgingScheme{
		Edges:  []int{-1, 30, 60, 90},
		Labels: []string{"0-30", "31-60", "61-90", "90+"},
	}
	// FiveBand is 0-30, 31-60, 61-90, 91-120 and an unbounded 120+.
	FiveBand = AgingScheme{
		Edges:  []int{-1, 30, 60, 90, 120},
		Labels: []string{"0-30", "31-60", "61-90", "91-120", "120+"},
	}
)

// NewAgingScheme returns a validated scheme.
//
// With len(edges) == len(labels) the last band is unbounded; with
// len(edges) == len(labels)+1 the last edge closes it (and still catches
// everything above it).
func NewAgingScheme(edges []int, labels []string) (AgingScheme, error) {
	s := AgingScheme{Edges: slices.Clone(edges), Labels: slices.Clone(labels)}
	if err := s.Validate(); err != nil {
		return AgingScheme{}, err
	}
	return s, nil
}

// Validate checks the rules of NewAgingScheme, for schemes written as
// literals.
func (s AgingScheme) Validate() error {
	if len(s.Labels) == 0 {
		return fmt.Errorf("aging scheme needs at least one label")
	}
	if n := len(s.Edges); n != len(s.Labels) && n != len(s.Labels)+1 {
		return fmt.Errorf("aging scheme has %d edges for %d labels", n, len(s.Labels))
	}
	for i := 1; i < len(s.Edges); i++ {
		if s.Edges[i] <= s.Edges[i-1] {
			return fmt.Errorf("aging scheme edges must be strictly increasing, got %v", s.Edges)
		}
	}
	seen := make(map[string]bool, len(s.Labels))
	for _, l := range s.Labels {
		if seen[l] {
			return fmt.Errorf("aging scheme label %q is duplicated", l)
		}
		seen[l] = true
	}
	return nil
}

// ParseAgingScheme reads "4" or "5" for the standard schemes, or a comma
// separated list of upper bounds like "30,60,90" that builds bands labeled
// 0-30, 31-60, 61-90, 90+.
func ParseAgingScheme(s string) (AgingScheme, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "4", "four":
		return FourBand, nil
	case "5", "five":
		return FiveBand, nil
	}
	edges := []int{-1}
	var labels []string
	for _, f := range strings.Split(s, ",") {
		upper, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return AgingScheme{}, fmt.Errorf("invalid aging scheme %q: %w", s, err)
		}
		lower := edges[len(edges)-1] + 1
		labels = append(labels, fmt.Sprintf("%d-%d", lower, upper))
		edges = append(edges, upper)
	}
	labels = append(labels, fmt.Sprintf("%d+", edges[len(edges)-1]))
	return NewAgingScheme(edges, labels)
}

// Locate returns the index of the band days belongs to.
func (s AgingScheme) Locate(days int) int {
	// number of edges strictly below days, minus the leading edge.
	i, _ := slices.BinarySearch(s.Edges, days)
	i--
	return max(0, min(i, len(s.Labels)-1))
}

// String returns the labels, comma separated.
func (s AgingScheme) String() string { return strings.Join(s.Labels, ",") }

// HorizonMode tells whether expiry windows overlap.
type HorizonMode int

const (
	// Disjoint windows: a lease is counted in exactly one horizon.
	Disjoint HorizonMode = iota
	// Cumulative windows: each horizon counts every lease up to its length.
	Cumulative
)

func (m HorizonMode) String() string {
	if m == Cumulative {
		return "cumulative"
	}
	return "disjoint"
}

// ParseHorizonMode reads "disjoint" or "cumulative".
func ParseHorizonMode(s string) (HorizonMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disjoint", "":
		return Disjoint, nil
	case "cumulative":
		return Cumulative, nil
	default:
		return Disjoint, fmt.Errorf("unknown horizon mode %q, want disjoint or cumulative", s)
	}
}

// HorizonScheme is the ascending list of forward-looking windows, in days,
// used by the expiry horizon counter.
type HorizonScheme struct {
	Days []int
	Mode HorizonMode
}

var (
	// DisjointHorizons counts leases in (0,30], (30,60], (60,90], (90,180].
	DisjointHorizons = HorizonScheme{Days: []int{30, 60, 90, 180}, Mode: Disjoint}
	// CumulativeHorizons counts leases in (0,30], (0,60], (0,90], (0,180].
	CumulativeHorizons = HorizonScheme{Days: []int{30, 60, 90, 180}, Mode: Cumulative}
)

// Labels returns the horizon labels, like "30d".
func (h HorizonScheme) Labels() []string {
	labels := make([]string, len(h.Days))
	for i, d := range h.Days {
		labels[i] = strconv.Itoa(d) + "d"
	}
	return labels
}

// Locate returns the indexes of the horizons that count a lease ending in
// days; none if it already ended or ends after the last horizon.
func (h HorizonScheme) Locate(days int) []int {
	if days <= 0 || len(h.Days) == 0 || days > h.Days[len(h.Days)-1] {
		return nil
	}
	// first window whose length is at least days.
	i, _ := slices.BinarySearch(h.Days, days)
	if h.Mode == Disjoint {
		return []int{i}
	}
	idx := make([]int, 0, len(h.Days)-i)
	for ; i < len(h.Days); i++ {
		idx = append(idx, i)
	}
	return idx
}

// NewHorizonScheme returns a validated scheme with strictly increasing,
// positive windows.
func NewHorizonScheme(days []int, mode HorizonMode) (HorizonScheme, error) {
	h := HorizonScheme{Days: slices.Clone(days), Mode: mode}
	if err := h.Validate(); err != nil {
		return HorizonScheme{}, err
	}
	return h, nil
}

// Validate checks the rules of NewHorizonScheme.
func (h HorizonScheme) Validate() error {
	if len(h.Days) == 0 {
		return fmt.Errorf("horizon scheme needs at least one window")
	}
	for i, d := range h.Days {
		if d <= 0 || (i > 0 && d <= h.Days[i-1]) {
			return fmt.Errorf("horizon windows must be positive and strictly increasing, got %v", h.Days)
		}
	}
	if h.Mode != Disjoint && h.Mode != Cumulative {
		return fmt.Errorf("unknown horizon mode %d", int(h.Mode))
	}
	return nil
}
