package cmd

import (
	"flag"

	"github.com/etnz/realty/date"
	"github.com/etnz/realty/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flags whose value is a source or an output file.
var fileFlags = map[string]bool{
	"rent-roll": true,
	"ledger":    true,
	"leases":    true,
	"previous":  true,
	"current":   true,
	"o":         true,
}

// Completion describes the rkpi command line for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(flag.CommandLine),
	}
	for _, e := range commands {
		f := flag.NewFlagSet(e.cmd.Name(), flag.ContinueOnError)
		e.cmd.SetFlags(f)
		root.Sub[e.cmd.Name()] = &complete.Command{
			Flags: predictFlags(f),
			Args:  predict.Files("*"),
		}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		flags[fl.Name] = predictFlag(fl)
	})
	return flags
}

func predictFlag(fl *flag.Flag) complete.Predictor {
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch {
	case fileFlags[fl.Name]:
		return predict.Files("*")
	case fl.Name == "format":
		return predict.Set(Formats)
	case fl.Name == "aging":
		return predict.Set{"4", "5"}
	case fl.Name == "horizons":
		return predict.Set{"disjoint", "cumulative"}
	case fl.Name == "period":
		return predict.Set{date.Monthly.String(), date.Quarterly.String(), date.Yearly.String()}
	default:
		return predict.Something
	}
}
