// Package rewrite generates safer replacement wording for risky clauses from
// a fixed template table.  Templates are keyed by risk-time clause type and
// risk level; Low-risk clauses short-circuit with a no-change result.
package rewrite

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/clauselens/clauselens/internal/domain/risk"
)

// Rewrite strategies.
const (
	StrategyRiskMitigation = "Risk Mitigation"
	StrategyClarification  = "Clarification"
	StrategyNoChange       = "No Change"
)

// templatePair holds the High and Medium rewrite texts for one clause type.
// "{notice_days}" and "{years}" placeholders are filled at rewrite time.
type templatePair struct {
	high   string
	medium string
}

var templates = map[risk.Type]templatePair{
	risk.TypeTermination: {
		high: "Either party may terminate this Agreement only after providing " +
			"a minimum written notice of {notice_days} days. Termination " +
			"shall be permitted solely for defined material breach or " +
			"mutual agreement, ensuring fairness to both parties.",
		medium: "Termination rights under this clause should be clarified by " +
			"specifying valid grounds for termination and an appropriate " +
			"notice period.",
	},
	risk.TypeConfidentiality: {
		high: "Confidential information shall be protected for a defined period " +
			"of {years} years from the date of disclosure. Obligations shall " +
			"apply only to information expressly identified as confidential.",
		medium: "Confidentiality obligations should clearly define the scope, " +
			"exceptions, and duration of protection.",
	},
	risk.TypeCompensation: {
		high: "All compensation payable under this Agreement shall be clearly " +
			"specified, including amount, payment schedule, and mode of " +
			"payment, to avoid ambiguity or dispute.",
		medium: "Payment terms should be clarified with defined timelines and " +
			"amounts.",
	},
	risk.TypeGeneral: {
		high: "This clause should be revised to include objective standards, " +
			"mutual obligations, and clearly defined limitations to prevent " +
			"unilateral or unfair interpretation.",
		medium: "This clause should be clarified by replacing vague language with " +
			"measurable and objective criteria.",
	},
}

// Result is the outcome of one rewrite.
type Result struct {
	RewrittenClause string  `json:"rewritten_clause"`
	Strategy        string  `json:"rewrite_strategy"`
	WhyThisChange   string  `json:"why_this_change"`
	Confidence      float64 `json:"confidence"`
}

// Rewriter fills rewrite templates.  The random source drives the suggested
// notice-period and confidentiality-duration values; inject a seeded source
// for reproducible output.
type Rewriter struct {
	rng *rand.Rand
}

// New returns a Rewriter using the given random source, or a time-seeded one
// when rng is nil.
func New(rng *rand.Rand) *Rewriter {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Rewriter{rng: rng}
}

var (
	noticeDayChoices = []int{15, 30}
	yearChoices      = []int{2, 3, 5}
)

// Rewrite produces replacement wording for a clause of the given risk-time
// type and risk level.  Types without a dedicated template fall back to the
// General pair.  Detected ambiguity terms and jurisdiction issues append
// explanatory suffixes and raise the confidence estimate.
func (r *Rewriter) Rewrite(riskLevel string, clauseType risk.Type, ambiguityTerms, lawIssues []string) Result {
	pair, ok := templates[clauseType]
	if !ok {
		pair = templates[risk.TypeGeneral]
	}

	var (
		rewritten string
		strategy  string
	)
	switch riskLevel {
	case "High":
		rewritten = pair.high
		strategy = StrategyRiskMitigation
	case "Medium":
		rewritten = pair.medium
		strategy = StrategyClarification
	default:
		return Result{
			RewrittenClause: "This clause is acceptable and aligned with standard SME " +
				"contracting practices. No immediate changes are required.",
			Strategy:      StrategyNoChange,
			WhyThisChange: "Clause presents low legal risk.",
			Confidence:    0.9,
		}
	}

	// Both values are always drawn so the random stream position does not
	// depend on which template was selected.
	noticeDays := noticeDayChoices[r.rng.Intn(len(noticeDayChoices))]
	years := yearChoices[r.rng.Intn(len(yearChoices))]
	rewritten = strings.NewReplacer(
		"{notice_days}", strconv.Itoa(noticeDays),
		"{years}", strconv.Itoa(years),
	).Replace(rewritten)

	if len(ambiguityTerms) > 0 {
		rewritten += " Vague expressions such as " + strings.Join(ambiguityTerms, ", ") +
			" have been replaced with clear, measurable obligations."
	}
	if len(lawIssues) > 0 {
		rewritten += " This revision aligns the clause with generally accepted " +
			"Indian legal principles to reduce enforceability risks."
	}

	confidence := 0.75
	if riskLevel == "High" {
		confidence += 0.1
	}
	if len(ambiguityTerms) > 0 {
		confidence += 0.05
	}
	if len(lawIssues) > 0 {
		confidence += 0.05
	}
	confidence = math.Min(confidence, 0.95)

	cause := "imbalance"
	if len(ambiguityTerms) > 0 {
		cause = "ambiguity"
	}

	return Result{
		RewrittenClause: rewritten,
		Strategy:        strategy,
		WhyThisChange: "The original clause posed legal risk due to " + cause +
			" and potential enforceability concerns.",
		Confidence: math.Round(confidence*100) / 100,
	}
}
