// Package risk scores the legal risk of individual contract clauses.  It
// carries its own clause classifier, narrower than the segmentation-time one
// and with a different label set; the two deliberately diverge (segmentation
// hints presentation, this one drives scoring) and must not be unified.
package risk

import (
	"math"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Risk-time classification
// ─────────────────────────────────────────────────────────────────────────────

// Type is the risk-time clause category.
type Type string

const (
	TypeTermination     Type = "Termination"
	TypeNonCompete      Type = "Non-Compete"
	TypeConfidentiality Type = "Confidentiality"
	TypeCompensation    Type = "Compensation"
	TypeIndemnity       Type = "Indemnity & Liability"
	TypeDispute         Type = "Dispute Resolution"
	TypeGeneral         Type = "General"
)

// classRule binds a type to the keyword list that claims it; first matching
// rule wins.
type classRule struct {
	label    Type
	keywords []string
}

// classRules is the ordered risk-time classification table.
var classRules = []classRule{
	{TypeTermination, []string{"terminate", "termination"}},
	{TypeNonCompete, []string{"non-compete", "non compete", "shall not compete", "restriction after termination"}},
	{TypeConfidentiality, []string{"confidential", "non-disclosure", "confidential information"}},
	{TypeCompensation, []string{"salary", "compensation", "fees", "payment", "remuneration"}},
	{TypeIndemnity, []string{"indemnify", "liability", "damages", "losses"}},
	{TypeDispute, []string{"arbitration", "jurisdiction", "governing law"}},
}

// Classify assigns the risk-time category for a clause text.  Matching is
// case-insensitive substring search; text matching no rule is General.
func Classify(clauseText string) Type {
	text := strings.ToLower(clauseText)
	for _, rule := range classRules {
		if containsAny(text, rule.keywords) {
			return rule.label
		}
	}
	return TypeGeneral
}

// ─────────────────────────────────────────────────────────────────────────────
// Scoring model tables
// ─────────────────────────────────────────────────────────────────────────────

// criticalRedFlags are deal-breaker phrases that boost any clause's score,
// regardless of type.
var criticalRedFlags = []string{
	"sole discretion",
	"without notice",
	"at any time",
	"irrevocable",
	"in perpetuity",
	"unlimited liability",
}

// ambiguityTerms is the scorer's own vague-language list.  It is narrower
// than the ambiguity package's lexicon on purpose: the scorer applies a flat
// penalty, not a severity model.
var ambiguityTerms = []string{
	"reasonable",
	"best efforts",
	"as soon as possible",
	"from time to time",
	"material",
}

// currencyMarkers indicate a compensation clause actually states an amount.
var currencyMarkers = []string{"₹", "inr", "rs.", "$"}

// Tier thresholds.
const (
	highScore   = 60
	mediumScore = 30
)

// Assessment is the full risk report for one clause.
type Assessment struct {
	Type                Type     `json:"type"`
	RiskLevel           string   `json:"risk_level"`
	Score               int      `json:"score"`
	Confidence          float64  `json:"confidence"`
	NegotiationPriority string   `json:"negotiation_priority"`
	Reasons             []string `json:"reasons"`
	Suggestions         []string `json:"suggestions"`
	Tags                []string `json:"tags"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Scorer
// ─────────────────────────────────────────────────────────────────────────────

// Assess classifies clauseText and applies the additive scoring model: a
// per-type base score with type-specific boosts, then flat cross-cutting
// boosts for ambiguous language and critical red flags.  Reasons,
// suggestions, and tags accumulate in evaluation order and are never
// deduplicated.  The result is a pure function of the input text.
func Assess(clauseText string) Assessment {
	text := strings.ToLower(clauseText)

	var (
		score       int
		reasons     []string
		suggestions []string
		tags        []string
	)

	clauseType := Classify(clauseText)

	switch clauseType {
	case TypeTermination:
		score += 20
		tags = append(tags, "Employment Risk")

		if containsAny(text, []string{"without notice", "immediate termination"}) {
			score += 30
			reasons = append(reasons, "Termination without adequate notice.")
			suggestions = append(suggestions, "Introduce minimum notice period (e.g., 30 days).")
			tags = append(tags, "High Impact")
		}

	case TypeNonCompete:
		score += 35
		reasons = append(reasons, "Restricts future employment opportunities.")
		suggestions = append(suggestions, "Limit non-compete by duration, geography, and business scope.")
		tags = append(tags, "Post-Termination Risk")

	case TypeConfidentiality:
		score += 10
		reasons = append(reasons, "Standard confidentiality obligation.")
		tags = append(tags, "IP Protection")

		if strings.Contains(text, "forever") || strings.Contains(text, "in perpetuity") {
			score += 15
			reasons = append(reasons, "Confidentiality obligation has no end date.")
			suggestions = append(suggestions, "Limit confidentiality to 2–5 years.")
		}

	case TypeCompensation:
		if !containsAny(text, currencyMarkers) {
			score += 25
			reasons = append(reasons, "Compensation amount is unclear or missing.")
			suggestions = append(suggestions, "Specify clear payment amount and schedule.")
			tags = append(tags, "Financial Risk")
		} else {
			score += 5
			reasons = append(reasons, "Compensation terms are defined.")
		}

	case TypeIndemnity:
		score += 30
		reasons = append(reasons, "Broad indemnity or liability exposure.")
		suggestions = append(suggestions, "Cap liability and exclude indirect or consequential damages.")
		tags = append(tags, "Financial Exposure")

	case TypeDispute:
		score += 10
		tags = append(tags, "Legal Process")

		if strings.Contains(text, "sole arbitrator appointed by") {
			score += 20
			reasons = append(reasons, "Unilateral arbitrator appointment.")
			suggestions = append(suggestions, "Provide mutual appointment mechanism.")
		}

	default:
		score += 5
		reasons = append(reasons, "General contractual obligation.")
	}

	if containsAny(text, ambiguityTerms) {
		score += 10
		reasons = append(reasons, "Uses ambiguous or subjective language.")
		suggestions = append(suggestions, "Replace vague terms with measurable obligations.")
		tags = append(tags, "Ambiguity")
	}

	if containsAny(text, criticalRedFlags) {
		score += 20
		reasons = append(reasons, "Contains critical red-flag language.")
		tags = append(tags, "Critical")
	}

	riskLevel := "Low"
	priority := "Optional"
	switch {
	case score >= highScore:
		riskLevel = "High"
		priority = "Immediate"
	case score >= mediumScore:
		riskLevel = "Medium"
		priority = "Recommended"
	}

	if len(suggestions) == 0 {
		suggestions = []string{"No immediate action required."}
	}

	confidence := math.Min(0.95, 0.6+float64(score)/120)

	return Assessment{
		Type:                clauseType,
		RiskLevel:           riskLevel,
		Score:               score,
		Confidence:          round2(confidence),
		NegotiationPriority: priority,
		Reasons:             reasons,
		Suggestions:         suggestions,
		Tags:                tags,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
