package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/realty"
	"github.com/google/subcommands"
)

type reportCmd struct {
	in      sourceFlags
	schemes schemeFlags
	out     outputFlags
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute the full KPI pack of a portfolio" }
func (*reportCmd) Usage() string {
	return `rkpi report [-rent-roll <src>] [-ledger <src>] [-leases <src>] [-previous <src> -current <src>] [flags]

  Computes every KPI whose sources are given: occupancy, arrears aging,
  lease expiries and NOI bridge, and writes them as a single report.

Usage Examples:
$ rkpi report -rent-roll rent_roll.csv -ledger ledger.csv -leases leases.csv \
    -previous pnl-2025-05.csv -current pnl-2025-06.csv -d 2025-06-30 -period monthly

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.in.SetFlags(f)
	c.schemes.setDateFlag(f, "Date of the report.")
	c.schemes.setAgingFlag(f)
	c.schemes.setHorizonFlag(f)
	c.schemes.setPeriodFlag(f)
	c.out.SetFlags(f)
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return usageError(f, "report takes its sources as flags")
	}
	if c.in.empty() {
		return usageError(f, "at least one source is required")
	}
	if err := c.out.validate(); err != nil {
		return usageError(f, "%v", err)
	}
	report, status := buildReport(ctx, &c.in, &c.schemes)
	if report == nil {
		return status
	}
	return c.out.write(report)
}

// buildReport loads the sources and computes the report. It returns nil and
// the exit status on failure.
func buildReport(ctx context.Context, in *sourceFlags, schemes *schemeFlags) (*realty.Report, subcommands.ExitStatus) {
	opts, err := schemes.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	inputs, err := in.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return nil, subcommands.ExitFailure
	}
	report, err := realty.NewReport(inputs, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing report: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return report, subcommands.ExitSuccess
}
