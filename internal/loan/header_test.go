package loan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanHeader(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"carriage return token", "지급_x000D_일", "지급일"},
		{"embedded newline", "상환\n잔액", "상환잔액"},
		{"cr and newline together", "총 융자_x000D_\n금액", "총융자금액"},
		{"surrounding and inner spaces", "  대 학 명  ", "대학명"},
		{"non-string label", 2021, "2021"},
		{"nil label", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanHeader(tt.in))
		})
	}
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"대학명", "학교명"},
		{"교명", "학교명"},
		{"University Name", "학교명"},
		{"총융자금액", "지급금액"},
		{"지급액(원)", "지급금액"},
		{"대출액", "지급금액"},
		{"상환액", "상환완료액"},
		{"납부액", "상환완료액"},
		{"회수액 누계", "상환완료액"},
		{"대출잔액", "상환잔액"},
		{"미상환 원금", "상환잔액"},
		{"학교법인", "법인명"},
		{"재단명", "법인명"},
		{"담보 유형", "담보종류"},
		{"예산", "사업예산구분"},
		{"거치 기간(년)", "거치기간"},
		{"조건변경 여부", "상환조건변경여부"},
		{"상환회계", "상환회계"},
		{"학교급", "학교급"},
		{"비고 사항", "비고사항"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHeader(tt.in))
		})
	}
}

func TestNormalizeHeaderArtifactsRemovedBeforeMatching(t *testing.T) {
	// neither label contains a rule substring until the artifacts are gone
	assert.Equal(t, "상환잔액", NormalizeHeader("미_x000D_상환"))
	assert.Equal(t, "학교명", NormalizeHeader("대\n학명"))
}

func TestNormalizeHeaderRuleOrder(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want CanonicalField
	}{
		{"collateral before budget", "담보예산", CollateralType},
		{"budget before collateral position irrelevant", "예산담보", CollateralType},
		{"institution before disbursement", "대학명지급액", InstitutionName},
		{"repaid before outstanding", "상환액잔액", RepaidAmount},
		{"outstanding before corporate body", "법인잔액", OutstandingBalance},
		{"terms changed before repayment account", "상환회계조건변경", TermsChangedFlag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), NormalizeHeader(tt.in))
		})
	}
}

func TestNormalizeHeaderIdempotent(t *testing.T) {
	for _, f := range CanonicalFields {
		once := NormalizeHeader(string(f))
		assert.Equal(t, string(f), once, "canonical label %q rewritten", f)
		assert.Equal(t, once, NormalizeHeader(once))
	}
	for _, raw := range []string{"총 융자 금액", "회수액", "University", "비고"} {
		once := NormalizeHeader(raw)
		assert.Equal(t, once, NormalizeHeader(once), "label %q", raw)
	}
}

func TestMatchRuleNoMatch(t *testing.T) {
	_, ok := MatchRule("비고")
	assert.False(t, ok)
}

func TestNormalizeHeadersDeduplicates(t *testing.T) {
	got := NormalizeHeaders([]string{"대학명", "교명", "지급액", "University"})
	assert.Equal(t, []string{"학교명", "학교명.1", "지급금액", "학교명.2"}, got)
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical("학교명"))
	assert.True(t, IsCanonical("지급연도"))
	assert.False(t, IsCanonical("상환율"), "derived by Reconcile, not a source field")
	assert.False(t, IsCanonical("비고"))
	assert.False(t, IsCanonical(NormalizeHeader("비 고")))
	assert.True(t, IsCanonical(NormalizeHeader("대학 명")))
}
