package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"KasfoMonitor/internal/loan"
)

// sources holds the -loan and -repay flags shared by the report commands.
type sources struct {
	loanFile  string
	repayFile string
	out       io.Writer
}

func (s *sources) setFlags(f *flag.FlagSet) {
	f.StringVar(&s.loanFile, "loan", os.Getenv("KASFO_LOAN_FILE"), "disbursement file (.csv, .xlsx, .xls)")
	f.StringVar(&s.repayFile, "repay", os.Getenv("KASFO_REPAY_FILE"), "optional repayment ledger file")
}

func (s *sources) writer() io.Writer {
	if s.out == nil {
		return os.Stdout
	}
	return s.out
}

// reconcile loads both files and runs the engine. The repayment file is
// optional; without it the merge is skipped.
func (s *sources) reconcile() (*loan.Reconciliation, error) {
	if s.loanFile == "" {
		return nil, fmt.Errorf("-loan is required")
	}
	loanTbl, err := loadFile(s.loanFile)
	if err != nil {
		return nil, err
	}
	var repayTbl *loan.Table
	if s.repayFile != "" {
		if repayTbl, err = loadFile(s.repayFile); err != nil {
			return nil, err
		}
	}
	return loan.Reconcile(loanTbl, repayTbl), nil
}

func loadFile(path string) (*loan.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loan.Load(f, filepath.Base(path))
}

func printMarkdown(w io.Writer, md string) {
	fmt.Fprint(w, md)
}
