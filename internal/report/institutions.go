package report

import (
	"KasfoMonitor/internal/loan"
)

// InstitutionColumns is the column order of the per-institution listing.
var InstitutionColumns = []string{
	string(loan.CorporateBodyName),
	string(loan.InstitutionName),
	string(loan.InstitutionLevel),
	string(loan.ProgramName),
	string(loan.BudgetCategory),
	string(loan.RepaymentAccountType),
	string(loan.DisbursementDate),
	string(loan.DisbursementAmount),
	string(loan.OutstandingBalance),
	loan.ComputedRepaid,
	loan.RepaymentRate,
}

var wonColumns = map[string]bool{
	string(loan.DisbursementAmount): true,
	string(loan.OutstandingBalance): true,
	loan.ComputedRepaid:             true,
}

// Listing is a table with raw values plus a display copy of every cell.
type Listing struct {
	Table     *loan.Table `json:"table"`
	Formatted [][]string  `json:"formatted"`
	Unit      string      `json:"unit"`
}

// Institutions lists the reconciled rows in InstitutionColumns order, keeping
// only rows where some column contains query.
func Institutions(rec *loan.Reconciliation, query string) (*Listing, error) {
	if rec == nil || rec.Table == nil {
		return nil, ErrNoData
	}
	t := rec.Table.Select(InstitutionColumns...).Filter(query)
	return &Listing{Table: t, Formatted: FormatTable(t), Unit: "원"}, nil
}

// FormatTable renders every cell for display: won columns with separators, the
// rate with a percent sign, dates as YYYY-MM-DD.
func FormatTable(t *loan.Table) [][]string {
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		line := make([]string, len(t.Columns))
		for j, col := range t.Columns {
			line[j] = FormatCell(col, r.Get(col))
		}
		out[i] = line
	}
	return out
}

// FormatCell renders one cell of column col for display.
func FormatCell(col string, c loan.Cell) string {
	if c.IsNull() {
		return ""
	}
	switch {
	case wonColumns[col]:
		return FormatWon(c.Decimal())
	case col == loan.RepaymentRate:
		return FormatRate(c.Decimal())
	default:
		return c.String()
	}
}
