package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"KasfoMonitor/internal/report"

	"github.com/google/subcommands"
)

type collateralCmd struct {
	sources
}

func (*collateralCmd) Name() string     { return "collateral" }
func (*collateralCmd) Synopsis() string { return "summarize collateral per institution" }
func (*collateralCmd) Usage() string {
	return `loanctl collateral -loan <file> [-repay <file>]
`
}

func (c *collateralCmd) SetFlags(f *flag.FlagSet) { c.sources.setFlags(f) }

func (c *collateralCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := c.reconcile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := report.Collateral(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(c.writer(), report.CollateralMarkdown(s))
	return subcommands.ExitSuccess
}
