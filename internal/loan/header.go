package loan

import (
	"fmt"
	"strconv"
	"strings"
)

// carriageReturnToken is how spreadsheet exports serialise a CR inside a cell.
const carriageReturnToken = "_x000D_"

type headerRule struct {
	substrings []string
	target     CanonicalField
}

// headerRules is evaluated top to bottom and the first match wins. Several rules
// can match the same label (e.g. 담보 and 예산), so the order is part of the contract.
var headerRules = []headerRule{
	{[]string{"대학명", "교명", "University"}, InstitutionName},
	{[]string{"총융자", "지급액", "대출액"}, DisbursementAmount},
	{[]string{"상환액", "납부액", "회수액"}, RepaidAmount},
	{[]string{"잔액", "미상환"}, OutstandingBalance},
	{[]string{"법인", "재단"}, CorporateBodyName},
	{[]string{"담보"}, CollateralType},
	{[]string{"예산"}, BudgetCategory},
	{[]string{"거치"}, GracePeriod},
	{[]string{"조건변경"}, TermsChangedFlag},
	{[]string{"상환회계"}, RepaymentAccountType},
}

// CleanHeader strips export artifacts and every space from a raw header label.
func CleanHeader(label any) string {
	s := labelText(label)
	s = strings.ReplaceAll(s, carriageReturnToken, "")
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, " ", "")
}

// MatchRule reports the canonical field of the first rule whose substrings occur
// in the (already cleaned) label.
func MatchRule(label string) (CanonicalField, bool) {
	for _, rule := range headerRules {
		for _, sub := range rule.substrings {
			if strings.Contains(label, sub) {
				return rule.target, true
			}
		}
	}
	return "", false
}

// NormalizeHeader cleans a raw label and maps it onto its canonical field.
// Labels that match no rule come back cleaned but otherwise verbatim.
func NormalizeHeader(label any) string {
	cleaned := CleanHeader(label)
	if field, ok := MatchRule(cleaned); ok {
		return string(field)
	}
	return cleaned
}

// NormalizeHeaders normalizes a header row. When two columns land on the same
// label the first keeps it and later ones get a ".1", ".2", ... suffix.
func NormalizeHeaders(labels []string) []string {
	out := make([]string, len(labels))
	seen := make(map[string]int, len(labels))
	for i, l := range labels {
		name := NormalizeHeader(l)
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n+1)
		} else {
			seen[name] = 0
		}
		out[i] = name
	}
	return out
}

func labelText(label any) string {
	switch v := label.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
