package report

import (
	"sort"

	"KasfoMonitor/internal/loan"

	"github.com/shopspring/decimal"
)

// Bucket is one bar of the yearly trend or one slice of the budget breakdown.
type Bucket struct {
	Key       string          `json:"key"`
	Amount    decimal.Decimal `json:"amount"`
	AmountEok decimal.Decimal `json:"amount_eok"`
	Share     decimal.Decimal `json:"share"`
}

// Dashboard holds the program-wide totals. Totals are in won; the *Eok fields
// repeat them in 억원. Trend and Budget are nil when the source has no
// 지급연도 / 사업예산구분 column.
type Dashboard struct {
	TotalLoan       decimal.Decimal `json:"total_loan"`
	TotalRepaid     decimal.Decimal `json:"total_repaid"`
	TotalBalance    decimal.Decimal `json:"total_balance"`
	TotalLoanEok    decimal.Decimal `json:"total_loan_eok"`
	TotalRepaidEok  decimal.Decimal `json:"total_repaid_eok"`
	TotalBalanceEok decimal.Decimal `json:"total_balance_eok"`
	AverageRate     decimal.Decimal `json:"average_rate"`
	Institutions    int             `json:"institutions"`
	Trend           []Bucket        `json:"trend"`
	Budget          []Bucket        `json:"budget"`
}

// BuildDashboard aggregates the reconciled table.
func BuildDashboard(rec *loan.Reconciliation) (*Dashboard, error) {
	if rec == nil || rec.Table == nil {
		return nil, ErrNoData
	}
	t := rec.Table
	disb := string(loan.DisbursementAmount)

	d := &Dashboard{
		TotalLoan:    t.Sum(disb),
		TotalRepaid:  t.Sum(loan.ComputedRepaid),
		TotalBalance: t.Sum(string(loan.OutstandingBalance)),
		AverageRate:  t.Mean(loan.RepaymentRate),
		Institutions: len(t.ValueCounts(string(loan.InstitutionName))),
	}
	d.TotalLoanEok = ToEok(d.TotalLoan)
	d.TotalRepaidEok = ToEok(d.TotalRepaid)
	d.TotalBalanceEok = ToEok(d.TotalBalance)

	if year := string(loan.DisbursementYear); t.HasColumn(year) {
		d.Trend = buckets(t.GroupSum(year, disb), false)
		sort.SliceStable(d.Trend, func(i, j int) bool {
			return yearKey(d.Trend[i].Key) < yearKey(d.Trend[j].Key)
		})
	}
	if budget := string(loan.BudgetCategory); t.HasColumn(budget) {
		d.Budget = buckets(t.GroupSum(budget, disb), true)
		sort.SliceStable(d.Budget, func(i, j int) bool {
			return d.Budget[i].Key < d.Budget[j].Key
		})
	}
	return d, nil
}

func buckets(groups []loan.Group, withShare bool) []Bucket {
	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.Sum)
	}
	out := make([]Bucket, 0, len(groups))
	for _, g := range groups {
		b := Bucket{Key: g.Key.String(), Amount: g.Sum, AmountEok: ToEok(g.Sum)}
		if withShare && total.IsPositive() {
			b.Share = g.Sum.Div(total).Mul(decimal.NewFromInt(100))
		}
		out = append(out, b)
	}
	return out
}

func yearKey(s string) int64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.IntPart()
}
