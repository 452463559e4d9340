package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/realty"
	"github.com/etnz/realty/date"
	"github.com/etnz/realty/source"
	"github.com/google/subcommands"
)

type occupancyCmd struct {
	out outputFlags
}

func (*occupancyCmd) Name() string     { return "occupancy" }
func (*occupancyCmd) Synopsis() string { return "summarize occupancy and rent per property" }
func (*occupancyCmd) Usage() string {
	return `rkpi occupancy [-format <format>] [-o <file>] <rent-roll>

  Summarizes a rent roll per property: number of units, occupancy rate,
  average rent over all units (vacant included) and total monthly rent.

  The rent roll needs the columns property_id, unit_id, is_occupied and
  monthly_rent. See "rkpi topic sources" for the supported sources.

`
}

func (c *occupancyCmd) SetFlags(f *flag.FlagSet) {
	c.out.SetFlags(f)
}

func (c *occupancyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(f, "occupancy takes exactly one rent roll")
	}
	if err := c.out.validate(); err != nil {
		return usageError(f, "%v", err)
	}

	tenancy, err := source.Load(ctx, f.Arg(0), realty.TenancySchema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rent roll: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := realty.NewReport(realty.Inputs{Tenancy: tenancy}, realty.Options{AsOf: date.Today()})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing occupancy: %v\n", err)
		return subcommands.ExitFailure
	}
	return c.out.write(report)
}
