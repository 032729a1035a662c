package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"KasfoMonitor/internal/report"

	"github.com/google/subcommands"
)

type dashboardCmd struct {
	sources
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display program totals, yearly trend and budget split" }
func (*dashboardCmd) Usage() string {
	return `loanctl dashboard -loan <file> [-repay <file>]
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) { c.sources.setFlags(f) }

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := c.reconcile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err := report.BuildDashboard(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(c.writer(), report.DashboardMarkdown(d))
	return subcommands.ExitSuccess
}
