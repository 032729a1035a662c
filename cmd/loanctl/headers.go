package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"KasfoMonitor/internal/loan"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

// headersCmd prints how each header of a file is normalized.
type headersCmd struct {
	out io.Writer
}

func (*headersCmd) Name() string     { return "headers" }
func (*headersCmd) Synopsis() string { return "show raw and normalized column headers of a file" }
func (*headersCmd) Usage() string {
	return `loanctl headers <file>...

  Prints every header label of the files next to the label it normalizes to,
  whether a rename rule matched and whether the result is a canonical field.
`
}

func (c *headersCmd) SetFlags(f *flag.FlagSet) {}

func (c *headersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one file is required")
		return subcommands.ExitUsageError
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	for _, path := range f.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			return subcommands.ExitFailure
		}
		raw, err := loan.RawHeaders(data, filepath.Base(path))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading headers: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(out, headersMarkdown(filepath.Base(path), raw))
	}
	return subcommands.ExitSuccess
}

func headersMarkdown(name string, raw []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(name)
	doc.Table(md.TableSet{Header: []string{"원본", "정규화", "규칙", "표준"}, Rows: headerRows(raw)})
	return doc.String()
}

// headerRows pairs each raw label with its normalized form, whether a rename
// rule matched and whether the result is a canonical field.
func headerRows(raw []string) [][]string {
	normalized := loan.NormalizeHeaders(raw)
	rows := make([][]string, len(raw))
	for i, label := range raw {
		matched, canonical := "-", "-"
		if _, ok := loan.MatchRule(loan.CleanHeader(label)); ok {
			matched = "✓"
		}
		if loan.IsCanonical(normalized[i]) {
			canonical = "✓"
		}
		rows[i] = []string{fmt.Sprintf("%q", label), normalized[i], matched, canonical}
	}
	return rows
}
