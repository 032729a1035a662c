package loan

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Discrepancy records a loan row whose repayment-ledger sum disagrees with the
// repaid amount derived from disbursement and outstanding balance.
type Discrepancy struct {
	Row            int             `json:"row"`
	Institution    string          `json:"institution"`
	LedgerRepaid   decimal.Decimal `json:"ledger_repaid"`
	ComputedRepaid decimal.Decimal `json:"computed_repaid"`
}

// Reconciliation is the loan table merged with the repayment ledger and extended
// with 상환액 and 상환율.
type Reconciliation struct {
	Table *Table `json:"table"`
	// LedgerMerged is set when the repayment table carried both 학교명 and 상환완료액.
	LedgerMerged  bool          `json:"ledger_merged"`
	Discrepancies []Discrepancy `json:"discrepancies"`
}

// Reconcile merges the repayment ledger onto the loan table by institution and
// recomputes the derived figures. It returns nil when there is no loan table.
// Neither input is modified.
//
// The repaid amount is always disbursement minus outstanding balance; a merged
// ledger sum never survives into 상환완료액 and is only reported in Discrepancies.
func Reconcile(loanTable, repayTable *Table) *Reconciliation {
	if loanTable == nil {
		return nil
	}

	var (
		inst   = string(InstitutionName)
		disb   = string(DisbursementAmount)
		out    = string(OutstandingBalance)
		repaid = string(RepaidAmount)
	)

	t := loanTable.Clone()
	for _, col := range []string{disb, out, repaid} {
		if t.HasColumn(col) {
			coerceColumn(t, col)
		}
	}

	res := &Reconciliation{Table: t, Discrepancies: make([]Discrepancy, 0)}

	if repayTable != nil && repayTable.HasColumn(inst) && repayTable.HasColumn(repaid) && t.HasColumn(inst) {
		mergeLedger(t, repayTable)
		res.LedgerMerged = true
	}

	hasAmounts := t.HasColumn(disb) && t.HasColumn(out)
	t.AddColumn(ComputedRepaid)
	t.AddColumn(repaid)
	for i, r := range t.Rows {
		value := decimal.Zero
		if hasAmounts {
			value = r.Get(disb).Num.Sub(r.Get(out).Num)
		}
		if res.LedgerMerged {
			if ledger := r.Get(repaid); !ledger.IsNull() && !ledger.Num.Equal(value) {
				res.Discrepancies = append(res.Discrepancies, Discrepancy{
					Row:            i,
					Institution:    r.Get(inst).String(),
					LedgerRepaid:   ledger.Num,
					ComputedRepaid: value,
				})
			}
		}
		r[ComputedRepaid] = Number(value)
		r[repaid] = Number(value)
	}

	t.AddColumn(RepaymentRate)
	for _, r := range t.Rows {
		r[RepaymentRate] = Number(repaymentRate(r.Get(ComputedRepaid).Num, r.Get(disb).Decimal()))
	}
	return res
}

// repaymentRate is repaid/disbursed in percent, 0 when nothing was disbursed.
// The result is not clamped to [0, 100].
func repaymentRate(repaid, disbursed decimal.Decimal) decimal.Decimal {
	if !disbursed.IsPositive() {
		return decimal.Zero
	}
	return repaid.Div(disbursed).Mul(hundred)
}

func coerceColumn(t *Table, col string) {
	for _, r := range t.Rows {
		r[col] = coerceNumber(r.Get(col))
	}
}

// mergeLedger replaces 상환완료액 on t with the per-institution ledger sum. Rows
// without a matching institution get a null.
func mergeLedger(t, ledger *Table) {
	inst, repaid := string(InstitutionName), string(RepaidAmount)

	sums := make(map[string]decimal.Decimal)
	for _, g := range ledger.GroupSum(inst, repaid) {
		sums[g.Key.String()] = g.Sum
	}

	t.DropColumn(repaid)
	t.AddColumn(repaid)
	for _, r := range t.Rows {
		key := r.Get(inst)
		if s, ok := sums[key.String()]; ok && !key.IsNull() {
			r[repaid] = Number(s)
		} else {
			r[repaid] = Null()
		}
	}
}
