package cmd

import (
	"slices"
	"testing"
)

func TestCompletion(t *testing.T) {
	c := Completion()

	for _, e := range commands {
		if _, ok := c.Sub[e.cmd.Name()]; !ok {
			t.Errorf("no completion for command %q", e.cmd.Name())
		}
	}
	if _, ok := c.Flags["currency"]; !ok {
		t.Error("no completion for the global -currency flag")
	}

	report := c.Sub["report"]
	if got := report.Flags["format"].Predict(""); !slices.Equal(got, Formats) {
		t.Errorf("report -format predicts %v, want %v", got, Formats)
	}
	if got := report.Flags["horizons"].Predict(""); !slices.Contains(got, "cumulative") {
		t.Errorf("report -horizons predicts %v", got)
	}
	if got := c.Sub["commentary"].Flags["i"].Predict(""); len(got) != 0 {
		t.Errorf("boolean flag -i predicts %v, want nothing", got)
	}
	if got := c.Sub["topic"].Args.Predict(""); !slices.Contains(got, "aging") {
		t.Errorf("topic predicts %v, want the aging topic", got)
	}
}
