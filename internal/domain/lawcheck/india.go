// Package lawcheck flags clause language that conflicts with Indian statute
// or settled practice.  Checks are keyword-based and advisory only.
package lawcheck

import "strings"

// ContractTypeEmployment enables the employment-specific wage checks.
const ContractTypeEmployment = "employment agreement"

// Issue strings returned by CheckIndia.
const (
	IssueNonCompeteVoid = "Post-employment non-compete clauses are generally void " +
		"under Section 27 of the Indian Contract Act."
	IssueSalaryWithholding = "Salary withholding may violate the Payment of Wages Act, 1936."
	IssueUnlimitedLiability = "Unlimited liability without a cap may be legally risky " +
		"and unenforceable."
)

var (
	salaryWithholdingKeywords = []string{
		"withhold salary",
		"stop payment",
		"salary may be withheld",
	}
	unlimitedLiabilityKeywords = []string{
		"unlimited liability",
		"no maximum limit",
		"fully liable",
	}
)

// CheckIndia scans a clause for India-specific enforceability problems and
// returns the matching issue descriptions in check order.  contractType is
// optional; the salary-withholding check only applies to employment
// agreements.  Empty clause text yields nil.
func CheckIndia(clauseText, contractType string) []string {
	if clauseText == "" {
		return nil
	}

	text := strings.ToLower(clauseText)
	ct := strings.ToLower(contractType)

	var issues []string

	if strings.Contains(text, "non-compete") || strings.Contains(text, "non compete") {
		issues = append(issues, IssueNonCompeteVoid)
	}

	if ct == ContractTypeEmployment && containsAny(text, salaryWithholdingKeywords) {
		issues = append(issues, IssueSalaryWithholding)
	}

	if containsAny(text, unlimitedLiabilityKeywords) {
		issues = append(issues, IssueUnlimitedLiability)
	}

	return issues
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
