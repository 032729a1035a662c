package loan

// CanonicalField is the program-internal name a spreadsheet column is mapped to.
// Values are the labels used in the cleaned source spreadsheets, so a column that
// already carries its canonical label is left alone by NormalizeHeader.
type CanonicalField string

const (
	InstitutionName      CanonicalField = "학교명"
	CorporateBodyName    CanonicalField = "법인명"
	InstitutionLevel     CanonicalField = "학교급"
	ProgramName          CanonicalField = "사업명"
	BudgetCategory       CanonicalField = "사업예산구분"
	RepaymentAccountType CanonicalField = "상환회계"
	GracePeriod          CanonicalField = "거치기간"
	TermsChangedFlag     CanonicalField = "상환조건변경여부"
	DisbursementDate     CanonicalField = "지급일"
	DisbursementAmount   CanonicalField = "지급금액"
	RepaidAmount         CanonicalField = "상환완료액"
	OutstandingBalance   CanonicalField = "상환잔액"
	CollateralType       CanonicalField = "담보종류"

	// DisbursementYear is derived from DisbursementDate by the loader.
	DisbursementYear CanonicalField = "지급연도"
)

// Columns added by Reconcile.
const (
	ComputedRepaid = "상환액"
	RepaymentRate  = "상환율"
)

// CanonicalFields lists every canonical field, derived ones included.
var CanonicalFields = []CanonicalField{
	InstitutionName,
	CorporateBodyName,
	InstitutionLevel,
	ProgramName,
	BudgetCategory,
	RepaymentAccountType,
	GracePeriod,
	TermsChangedFlag,
	DisbursementDate,
	DisbursementAmount,
	RepaidAmount,
	OutstandingBalance,
	CollateralType,
	DisbursementYear,
}

func (f CanonicalField) String() string { return string(f) }

// IsCanonical reports whether label is one of CanonicalFields.
func IsCanonical(label string) bool {
	for _, f := range CanonicalFields {
		if string(f) == label {
			return true
		}
	}
	return false
}
