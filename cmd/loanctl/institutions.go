package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"KasfoMonitor/internal/report"

	"github.com/google/subcommands"
)

type institutionsCmd struct {
	sources
	query string
}

func (*institutionsCmd) Name() string     { return "institutions" }
func (*institutionsCmd) Synopsis() string { return "list loans per institution" }
func (*institutionsCmd) Usage() string {
	return `loanctl institutions -loan <file> [-repay <file>] [-q <text>]

  Lists every loan row with amounts in won. -q keeps rows where any listed
  column contains the text (학교명, 법인명, ...).
`
}

func (c *institutionsCmd) SetFlags(f *flag.FlagSet) {
	c.sources.setFlags(f)
	f.StringVar(&c.query, "q", "", "search text")
}

func (c *institutionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := c.reconcile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	l, err := report.Institutions(rec, c.query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(c.writer(), report.ListingMarkdown("학교별 상세 융자 현황", l))
	return subcommands.ExitSuccess
}
