package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/realty/agent"
	"github.com/etnz/realty/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type commentaryCmd struct {
	in          sourceFlags
	schemes     schemeFlags
	model       string
	interactive bool
}

func (*commentaryCmd) Name() string     { return "commentary" }
func (*commentaryCmd) Synopsis() string { return "ask Gemini to comment the KPI pack" }
func (*commentaryCmd) Usage() string {
	return `rkpi commentary [sources] [flags] [<request>]

  Computes the KPI pack like "rkpi report" and asks Gemini to write its
  commentary. An optional request replaces the default one, for instance
  "which property needs attention?". With -i the session goes on
  interactively.

  The Gemini client reads its API key from GEMINI_API_KEY.

`
}

func (c *commentaryCmd) SetFlags(f *flag.FlagSet) {
	c.in.SetFlags(f)
	c.schemes.setDateFlag(f, "Date of the report.")
	c.schemes.setAgingFlag(f)
	c.schemes.setHorizonFlag(f)
	c.schemes.setPeriodFlag(f)
	f.StringVar(&c.model, "model", config.Model, "Gemini model")
	f.BoolVar(&c.interactive, "i", false, "keep asking questions after the commentary")
}

func (c *commentaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in.empty() {
		return usageError(f, "at least one source is required")
	}
	report, status := buildReport(ctx, &c.in, &c.schemes)
	if report == nil {
		return status
	}
	view := renderer.NewReport(report, *currency)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(c.model, view))
	a.Print = printMarkdown
	brief := agent.Brief(view, strings.Join(f.Args(), " "))

	if c.interactive {
		err = a.Run(ctx, client, brief)
	} else {
		var answer string
		answer, err = a.Ask(ctx, client, brief)
		if err == nil {
			printMarkdown(answer)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error from Gemini:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
