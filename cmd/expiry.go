package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/realty"
	"github.com/etnz/realty/source"
	"github.com/google/subcommands"
)

type expiryCmd struct {
	schemes schemeFlags
	out     outputFlags
}

func (*expiryCmd) Name() string     { return "expiry" }
func (*expiryCmd) Synopsis() string { return "count leases expiring within 30, 60, 90 and 180 days" }
func (*expiryCmd) Usage() string {
	return `rkpi expiry [-d <date>] [-horizons disjoint|cumulative] [-format <format>] [-o <file>] <leases>

  Counts the leases ending after the -d date, within 30, 60, 90 and 180 days.
  Leases already ended and leases ending later than 180 days are not counted.

  The lease list needs the column end_date.

`
}

func (c *expiryCmd) SetFlags(f *flag.FlagSet) {
	c.schemes.setDateFlag(f, "Date the horizons start from.")
	c.schemes.setHorizonFlag(f)
	c.out.SetFlags(f)
}

func (c *expiryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(f, "expiry takes exactly one lease list")
	}
	if err := c.out.validate(); err != nil {
		return usageError(f, "%v", err)
	}
	opts, err := c.schemes.options()
	if err != nil {
		return usageError(f, "%v", err)
	}

	leases, err := source.Load(ctx, f.Arg(0), realty.LeaseSchema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading leases: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := realty.NewReport(realty.Inputs{Leases: leases}, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting expiries: %v\n", err)
		return subcommands.ExitFailure
	}
	return c.out.write(report)
}
