package report

import (
	"bytes"
	"fmt"

	"KasfoMonitor/internal/loan"

	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the dashboard as a markdown document.
func DashboardMarkdown(d *Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("융자사업 통합 대시보드")
	doc.Table(md.TableSet{
		Header: []string{"항목", "값"},
		Rows: [][]string{
			{"총 지급 금액", FormatEok(d.TotalLoan)},
			{"총 상환 완료액", FormatEok(d.TotalRepaid)},
			{"현재 상환 잔액", FormatEok(d.TotalBalance)},
			{"평균 상환율", FormatRate(d.AverageRate)},
			{"학교 수", fmt.Sprintf("%d", d.Institutions)},
		},
	})

	doc.H2("연도별 융자 집행 추이 (단위: 억원)")
	if d.Trend == nil {
		doc.PlainText("지급일 데이터가 없습니다.")
	} else {
		rows := make([][]string, 0, len(d.Trend))
		for _, b := range d.Trend {
			rows = append(rows, []string{b.Key, b.AmountEok.StringFixed(1)})
		}
		doc.Table(md.TableSet{Header: []string{"지급연도", "지급금액"}, Rows: rows})
	}

	doc.H2("예산 구분별 비중")
	if d.Budget == nil {
		doc.PlainText("예산 구분 정보가 없습니다.")
	} else {
		rows := make([][]string, 0, len(d.Budget))
		for _, b := range d.Budget {
			rows = append(rows, []string{b.Key, FormatEok(b.Amount), FormatRate(b.Share)})
		}
		doc.Table(md.TableSet{Header: []string{"사업예산구분", "지급금액", "비중"}, Rows: rows})
	}
	return doc.String()
}

// ListingMarkdown renders a listing with its formatted cells.
func ListingMarkdown(title string, l *Listing) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	doc.PlainText(fmt.Sprintf("(단위 : %s) %d건", l.Unit, l.Table.Len()))
	doc.Table(md.TableSet{Header: l.Table.Columns, Rows: l.Formatted})
	return doc.String()
}

// CollateralMarkdown renders the collateral summary.
func CollateralMarkdown(c *CollateralSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("학교별 담보 제공 현황")
	doc.H2("담보 요약")
	rows := make([][]string, 0, len(c.Counts))
	for _, vc := range c.Counts {
		rows = append(rows, []string{vc.Value, fmt.Sprintf("%d", vc.Count)})
	}
	doc.Table(md.TableSet{Header: []string{"담보종류", "건수"}, Rows: rows})

	doc.H2("상세 내역")
	doc.Table(md.TableSet{Header: c.Detail.Table.Columns, Rows: c.Detail.Formatted})
	return doc.String()
}

// ReconciliationMarkdown renders the full reconciled table followed by the rows
// whose repayment ledger disagreed with the derived repaid amount.
func ReconciliationMarkdown(rec *loan.Reconciliation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("융자 정산 결과")
	doc.Table(md.TableSet{Header: rec.Table.Columns, Rows: FormatTable(rec.Table)})

	if len(rec.Discrepancies) > 0 {
		doc.H2("상환 원장 불일치")
		rows := make([][]string, 0, len(rec.Discrepancies))
		for _, d := range rec.Discrepancies {
			rows = append(rows, []string{
				fmt.Sprintf("%d", d.Row+1),
				d.Institution,
				FormatWon(d.LedgerRepaid),
				FormatWon(d.ComputedRepaid),
			})
		}
		doc.Table(md.TableSet{Header: []string{"행", "학교명", "원장 합계", "지급-잔액"}, Rows: rows})
	}
	return doc.String()
}
