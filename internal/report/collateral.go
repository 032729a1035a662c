package report

import (
	"KasfoMonitor/internal/loan"
)

// CollateralSummary counts institutions per collateral type and lists the
// collateral of each loan row.
type CollateralSummary struct {
	Counts []loan.ValueCount `json:"counts"`
	Detail *Listing          `json:"detail"`
}

// Collateral builds the collateral view. It needs a 담보종류 column.
func Collateral(rec *loan.Reconciliation) (*CollateralSummary, error) {
	if rec == nil || rec.Table == nil {
		return nil, ErrNoData
	}
	t := rec.Table
	if !t.HasColumn(string(loan.CollateralType)) {
		return nil, ErrNoCollateral
	}
	detail := t.Select(
		string(loan.InstitutionName),
		string(loan.CollateralType),
		string(loan.DisbursementAmount),
	)
	return &CollateralSummary{
		Counts: t.ValueCounts(string(loan.CollateralType)),
		Detail: &Listing{Table: detail, Formatted: FormatTable(detail), Unit: "원"},
	}, nil
}
