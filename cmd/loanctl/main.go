// Command loanctl runs the loan reconciliation and report views over local
// disbursement and repayment files and prints them as markdown.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&headersCmd{}, "inspect")

	c.Register(&reconcileCmd{}, "reports")
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&institutionsCmd{}, "reports")
	c.Register(&collateralCmd{}, "reports")
}
