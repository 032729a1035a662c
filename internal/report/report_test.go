package report

import (
	"testing"
	"time"

	"KasfoMonitor/internal/loan"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func reconciled(t *testing.T) *loan.Reconciliation {
	t.Helper()
	tbl := loan.NewTable([]string{"법인명", "학교명", "사업예산구분", "지급일", "지급연도", "지급금액", "상환잔액", "담보종류"})
	tbl.Rows = append(tbl.Rows,
		loan.Row{
			"법인명": loan.Text("가나학원"), "학교명": loan.Text("가나대학교"), "사업예산구분": loan.Text("일반"),
			"지급일": loan.Date(time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)), "지급연도": loan.Int(2020),
			"지급금액": loan.Number(dec("300000000")), "상환잔액": loan.Number(dec("100000000")), "담보종류": loan.Text("부동산"),
		},
		loan.Row{
			"법인명": loan.Text("다라재단"), "학교명": loan.Text("다라대학교"), "사업예산구분": loan.Text("특별"),
			"지급일": loan.Date(time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)), "지급연도": loan.Int(2019),
			"지급금액": loan.Number(dec("100000000")), "상환잔액": loan.Number(dec("100000000")), "담보종류": loan.Text("보증"),
		},
		loan.Row{
			"법인명": loan.Text("가나학원"), "학교명": loan.Text("가나전문대"), "사업예산구분": loan.Text("일반"),
			"지급일": loan.Null(), "지급연도": loan.Null(),
			"지급금액": loan.Number(dec("0")), "상환잔액": loan.Number(dec("0")), "담보종류": loan.Text("부동산"),
		},
	)
	rec := loan.Reconcile(tbl, nil)
	require.NotNil(t, rec)
	return rec
}

func TestViewsWithoutData(t *testing.T) {
	_, err := BuildDashboard(nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = Institutions(nil, "")
	assert.ErrorIs(t, err, ErrNoData)
	_, err = Collateral(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBuildDashboard(t *testing.T) {
	d, err := BuildDashboard(reconciled(t))
	require.NoError(t, err)

	assert.True(t, dec("400000000").Equal(d.TotalLoan))
	assert.True(t, dec("200000000").Equal(d.TotalRepaid))
	assert.True(t, dec("200000000").Equal(d.TotalBalance))
	assert.True(t, dec("4").Equal(d.TotalLoanEok))
	assert.Equal(t, 3, d.Institutions)

	// (66.67 + 0 + 0) / 3, the zero-disbursement row counts as 0
	assert.Equal(t, "22.2", d.AverageRate.StringFixed(1))

	require.Len(t, d.Trend, 2)
	assert.Equal(t, "2019", d.Trend[0].Key)
	assert.Equal(t, "2020", d.Trend[1].Key)
	assert.True(t, dec("3").Equal(d.Trend[1].AmountEok))

	require.Len(t, d.Budget, 2)
	assert.Equal(t, "일반", d.Budget[0].Key)
	assert.True(t, dec("75").Equal(d.Budget[0].Share))
	assert.True(t, dec("25").Equal(d.Budget[1].Share))
}

func TestBuildDashboardWithoutOptionalColumns(t *testing.T) {
	tbl := loan.NewTable([]string{"학교명", "지급금액", "상환잔액"})
	tbl.Rows = append(tbl.Rows, loan.Row{"학교명": loan.Text("A"), "지급금액": loan.Text("100"), "상환잔액": loan.Text("50")})

	d, err := BuildDashboard(loan.Reconcile(tbl, nil))
	require.NoError(t, err)
	assert.Nil(t, d.Trend)
	assert.Nil(t, d.Budget)
	assert.True(t, dec("50").Equal(d.AverageRate))
}

func TestInstitutions(t *testing.T) {
	l, err := Institutions(reconciled(t), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"법인명", "학교명", "사업예산구분", "지급일", "지급금액", "상환잔액", "상환액", "상환율"}, l.Table.Columns)
	require.Len(t, l.Formatted, 3)
	assert.Equal(t, []string{"가나학원", "가나대학교", "일반", "2020-03-01", "300,000,000", "100,000,000", "200,000,000", "66.7%"}, l.Formatted[0])
	assert.Equal(t, "", l.Formatted[2][3], "missing dates render empty")
	assert.Equal(t, "원", l.Unit)
}

func TestInstitutionsSearch(t *testing.T) {
	rec := reconciled(t)

	l, err := Institutions(rec, "가나")
	require.NoError(t, err)
	assert.Equal(t, 2, l.Table.Len())

	l, err = Institutions(rec, "다라재단")
	require.NoError(t, err)
	require.Equal(t, 1, l.Table.Len())
	assert.Equal(t, "다라대학교", l.Table.Rows[0].Get("학교명").String())

	l, err = Institutions(rec, "부동산")
	require.NoError(t, err)
	assert.Equal(t, 0, l.Table.Len(), "only listed columns are searched")
}

func TestCollateral(t *testing.T) {
	c, err := Collateral(reconciled(t))
	require.NoError(t, err)

	assert.Equal(t, []loan.ValueCount{{Value: "부동산", Count: 2}, {Value: "보증", Count: 1}}, c.Counts)
	assert.Equal(t, []string{"학교명", "담보종류", "지급금액"}, c.Detail.Table.Columns)
	assert.Equal(t, []string{"가나대학교", "부동산", "300,000,000"}, c.Detail.Formatted[0])
}

func TestCollateralMissingColumn(t *testing.T) {
	tbl := loan.NewTable([]string{"학교명"})
	_, err := Collateral(loan.Reconcile(tbl, nil))
	assert.ErrorIs(t, err, ErrNoCollateral)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1,234,568", FormatWon(dec("1234567.89")))
	assert.Equal(t, "0", FormatWon(decimal.Zero))
	assert.Equal(t, "12.3 억원", FormatEok(dec("1234567890")))
	assert.Equal(t, "60.0%", FormatRate(dec("60")))
	assert.Equal(t, "1,250.5%", FormatRate(dec("1250.5")))
}

func TestMarkdown(t *testing.T) {
	rec := reconciled(t)
	d, err := BuildDashboard(rec)
	require.NoError(t, err)

	out := DashboardMarkdown(d)
	assert.Contains(t, out, "# 융자사업 통합 대시보드")
	assert.Contains(t, out, "4.0 억원")
	assert.Contains(t, out, "2020")

	l, err := Institutions(rec, "")
	require.NoError(t, err)
	assert.Contains(t, ListingMarkdown("학교별 상세 융자 현황", l), "300,000,000")

	c, err := Collateral(rec)
	require.NoError(t, err)
	assert.Contains(t, CollateralMarkdown(c), "부동산")

	assert.Contains(t, ReconciliationMarkdown(rec), "상환율")
}
