// Package explain renders plain-English explanations of contract clauses for
// readers without legal training.  An ordered rule table keyed on the
// clause's type hint and text keywords selects the explanation; the first
// matching rule wins and unmatched clauses get a neutral fallback.
package explain

import (
	"regexp"
	"strings"
)

// Explanation is the plain-English report for one clause.
type Explanation struct {
	WhatItMeans     string `json:"what_it_means"`
	WhyItMatters    string `json:"why_it_matters"`
	RiskLevel       string `json:"risk_level"`
	Favours         string `json:"favours"`
	SuggestedAction string `json:"suggested_action"`
}

var (
	rePartyIdentification = regexp.MustCompile(`hereinafter|between\s+mr|tenant|owner|residing at`)
	reExecutionDetails    = regexp.MustCompile(`stamp|signature|witness|seal|page\s*\d`)
)

func typeContainsAny(clauseType string, keys ...string) bool {
	for _, k := range keys {
		if strings.Contains(clauseType, k) {
			return true
		}
	}
	return false
}

// Explain produces the plain-English explanation for a clause.  clauseType
// is the segmentation-time type hint; forcedRisk, when non-empty, is the risk
// tier already computed by the scorer and is echoed in the result (the
// non-compete rule overrides it to High).  Favours leans toward the stronger
// party when the forced risk is elevated.
func Explain(clauseText, clauseType, forcedRisk string) Explanation {
	text := strings.ToLower(clauseText)
	ct := strings.ToLower(clauseType)

	riskLevel := forcedRisk
	if riskLevel == "" {
		riskLevel = "Low"
	}

	e := Explanation{
		RiskLevel:       riskLevel,
		Favours:         "Neutral",
		SuggestedAction: "No immediate action required.",
	}

	switch {
	case typeContainsAny(ct, "security", "deposit"):
		e.WhatItMeans = "This clause explains how the security deposit will be adjusted or refunded."
		e.WhyItMatters = "Vague deductions or undefined charges can result in unfair loss of deposit."
		if forcedRisk == "Medium" || forcedRisk == "High" {
			e.Favours = "Owner / Landlord"
		}
		e.SuggestedAction = "Specify exact deductions, timelines, and require proof of expenses."

	case typeContainsAny(ct, "payment", "financial", "salary", "rent"):
		e.WhatItMeans = "This clause explains how and when payments must be made."
		e.WhyItMatters = "Unclear timelines, penalties, or deductions can create disputes or financial stress."
		if forcedRisk == "High" {
			e.Favours = "Owner / Employer"
		}
		e.SuggestedAction = "Ensure fixed payment dates, clear amounts, and transparent deductions."

	case strings.Contains(ct, "termination") || strings.Contains(text, "terminate"):
		e.WhatItMeans = "This clause explains when and how the agreement can be terminated."
		e.WhyItMatters = "Sudden or one-sided termination reduces legal and financial protection."
		if forcedRisk == "High" {
			e.Favours = "Owner / Employer"
		}
		e.SuggestedAction = "Ensure reasonable notice periods and fair termination conditions."

	case typeContainsAny(ct, "maintenance", "handover", "repair"):
		e.WhatItMeans = "This clause sets responsibilities for maintaining and returning the premises."
		e.WhyItMatters = "Unclear handover standards may lead to disputes, especially over deposits."
		e.SuggestedAction = "Clearly define wear-and-tear versus chargeable damages."

	case typeContainsAny(ct, "use", "restriction", "premises"):
		e.WhatItMeans = "This clause restricts how the property or service may be used."
		e.WhyItMatters = "Overly broad restrictions may limit reasonable and lawful usage."
		e.SuggestedAction = "Ensure restrictions are reasonable, lawful, and clearly defined."

	case typeContainsAny(ct, "non-compete", "non compete") || strings.Contains(text, "compete"):
		e.WhatItMeans = "This clause restricts the employee from working in a similar business after employment ends."
		e.WhyItMatters = "Post-employment non-compete clauses are generally unenforceable in India under Section 27 of the Indian Contract Act."
		e.RiskLevel = "High"
		e.Favours = "Employer"
		e.SuggestedAction = "Replace with narrowly scoped confidentiality or non-solicitation clauses instead of a blanket non-compete."

	case rePartyIdentification.MatchString(text):
		e.WhatItMeans = "This clause identifies the parties to the agreement."
		e.WhyItMatters = "Incorrect names or addresses can affect legal enforceability."
		e.SuggestedAction = "Verify names, addresses, and identity details carefully."

	case reExecutionDetails.MatchString(text):
		e.WhatItMeans = "This clause records execution or administrative details."
		e.WhyItMatters = "These confirm document validity but do not create obligations."
		e.SuggestedAction = "Verify stamps, dates, and signatures."

	case strings.Contains(ct, "jurisdiction") || strings.Contains(text, "court") || strings.Contains(text, "governing law"):
		e.WhatItMeans = "This clause decides which courts and laws will apply if a dispute arises."
		e.WhyItMatters = "Unclear or foreign jurisdiction can increase legal cost and complexity."
		if forcedRisk == "Medium" || forcedRisk == "High" {
			e.Favours = "Owner / Employer"
		}
		e.SuggestedAction = "Ensure jurisdiction is clearly defined and convenient to both parties."

	case strings.Contains(ct, "limitation") || strings.Contains(text, "limit liability"):
		e.WhatItMeans = "This clause limits how much one party can be held financially responsible."
		e.WhyItMatters = "Unlimited liability can expose a party to excessive financial risk."
		e.Favours = "Party setting the limit"
		e.SuggestedAction = "Ensure liability caps are reasonable and proportionate."

	case strings.Contains(ct, "indemnity") || strings.Contains(text, "indemnify"):
		e.WhatItMeans = "This clause requires one party to compensate the other for certain losses."
		e.WhyItMatters = "Broad indemnities can create unpredictable financial exposure."
		e.Favours = "Benefiting party"
		e.SuggestedAction = "Limit indemnity to direct and foreseeable losses."

	case strings.Contains(ct, "confidential") || strings.Contains(text, "nda"):
		e.WhatItMeans = "This clause restricts sharing of sensitive or private information."
		e.WhyItMatters = "Overly long or strict confidentiality may be unenforceable."
		e.Favours = "Disclosing party"
		e.SuggestedAction = "Define scope, duration, and exclusions clearly."

	case strings.Contains(ct, "intellectual") || strings.Contains(text, "ip rights"):
		e.WhatItMeans = "This clause defines ownership of ideas, work, or creations."
		e.WhyItMatters = "Unclear IP ownership can lead to future legal disputes."
		e.Favours = "Party owning the IP"
		e.SuggestedAction = "Clearly specify ownership, usage rights, and transfer terms."

	default:
		e.WhatItMeans = "This clause provides general or supporting terms of the agreement."
		e.WhyItMatters = "It should not contradict or weaken higher-risk clauses."
	}

	return e
}
