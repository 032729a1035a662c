package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"KasfoMonitor/internal/report"

	"github.com/google/subcommands"
)

// reconcileCmd prints the reconciled loan table.
type reconcileCmd struct {
	sources
	columns string
	query   string
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "merge a loan file with its repayment ledger" }
func (*reconcileCmd) Usage() string {
	return `loanctl reconcile -loan <file> [-repay <file>] [-columns a,b] [-q <text>]

  Prints the loan table with 상환액 and 상환율 added, followed by the rows
  whose ledger total disagrees with 지급금액 - 상환잔액.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	c.sources.setFlags(f)
	f.StringVar(&c.columns, "columns", "", "comma separated columns to keep, in order")
	f.StringVar(&c.query, "q", "", "keep rows containing this text")
}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := c.reconcile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.columns != "" {
		var cols []string
		for _, col := range strings.Split(c.columns, ",") {
			if col = strings.TrimSpace(col); col != "" {
				cols = append(cols, col)
			}
		}
		rec.Table = rec.Table.Select(cols...)
	}
	rec.Table = rec.Table.Filter(c.query)

	printMarkdown(c.writer(), report.ReconciliationMarkdown(rec))
	return subcommands.ExitSuccess
}
