package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// Entities is the fact-based key-entity summary extracted from the whole
// document text, independent of clause boundaries.
type Entities struct {
	Parties               []string `json:"parties"`
	FinancialAmounts      []string `json:"financial_amounts"`
	Durations             []string `json:"durations"`
	TerminationConditions []string `json:"termination_conditions"`
	Confidentiality       []string `json:"confidentiality"`
	Obligations           []string `json:"obligations"`
	Ownership             []string `json:"ownership"`
}

var (
	// reMoney matches rupee amounts with at least 4 digit/comma characters,
	// which filters out page numbers and clause ordinals.
	reMoney = regexp.MustCompile(`(?:₹|rs\.?)\s?([\d,]{4,})`)

	// reDuration matches "<n> months" / "<n> years" mentions.
	reDuration = regexp.MustCompile(`\b(\d{1,2})\s*(months?|years?)\b`)
)

// ExtractEntities scans the full document text for party pairs, monetary
// amounts, durations, and the presence of termination, confidentiality,
// liability, and ownership language.  Amounts and durations are
// de-duplicated in first-seen order.
func ExtractEntities(text string) Entities {
	t := strings.ToLower(text)

	var e Entities

	switch {
	case strings.Contains(t, "lessor") && strings.Contains(t, "lessee"):
		e.Parties = append(e.Parties, "Lessor and Lessee")
	case strings.Contains(t, "landlord") && strings.Contains(t, "tenant"):
		e.Parties = append(e.Parties, "Landlord and Tenant")
	case strings.Contains(t, "employer") && strings.Contains(t, "employee"):
		e.Parties = append(e.Parties, "Employer and Employee")
	}

	seenAmount := map[string]bool{}
	for _, m := range reMoney.FindAllStringSubmatch(t, -1) {
		if seenAmount[m[1]] {
			continue
		}
		seenAmount[m[1]] = true
		e.FinancialAmounts = append(e.FinancialAmounts, "₹ "+m[1])
	}

	seenDuration := map[string]bool{}
	for _, m := range reDuration.FindAllStringSubmatch(t, -1) {
		num, unit := m[1], m[2]
		// "Years" values above 30 are almost always stray numbers, not
		// lease or notice terms.
		if n, err := strconv.Atoi(num); err == nil && strings.HasPrefix(unit, "year") && n > 30 {
			continue
		}
		d := num + " " + unit
		if seenDuration[d] {
			continue
		}
		seenDuration[d] = true
		e.Durations = append(e.Durations, d)
	}

	if containsAny(t, "terminate", "termination", "notice period") {
		e.TerminationConditions = append(e.TerminationConditions, "Termination clause present")
	}
	if containsAny(t, "confidential", "non-disclosure", "nda") {
		e.Confidentiality = append(e.Confidentiality, "Confidentiality obligation present")
	}
	if containsAny(t, "liable", "indemnify", "hold harmless") {
		e.Obligations = append(e.Obligations, "Liability / indemnity obligations present")
	}
	if containsAny(t, "intellectual property", "ownership", "shall belong to") {
		e.Ownership = append(e.Ownership, "Ownership / IP rights defined")
	}

	return e
}

func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
