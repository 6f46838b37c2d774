// Package ambiguity detects vague or subjective legal phrasing in clause
// text.  A fixed lexicon maps each phrase to a category, a severity weight,
// and a remediation suggestion; detection is case-insensitive substring
// matching.  The lexicon is an immutable table shared by all invocations.
package ambiguity

import "strings"

// Category groups ambiguous phrases by the kind of uncertainty they create.
type Category string

const (
	CategorySubjective Category = "Subjective"
	CategoryObligation Category = "Obligation"
	CategoryTimeline   Category = "Timeline"
	CategoryScope      Category = "Scope"
	CategoryDiscretion Category = "Discretion"
)

// Term is one lexicon entry: an ambiguous phrase with its category, severity
// weight, and remediation suggestion.
type Term struct {
	Phrase     string
	Category   Category
	Severity   int
	Suggestion string
}

// terms is the ambiguous-phrase lexicon, in fixed evaluation order.
// Severity weights range 2–3; higher means more dispute-prone.
var terms = []Term{
	{"reasonable", CategorySubjective, 2, "Define objective standards or measurable criteria."},
	{"reasonably", CategorySubjective, 2, "Specify exact conditions instead of subjective judgment."},
	{"best efforts", CategoryObligation, 3, "Replace with clearly defined obligations or milestones."},
	{"commercially reasonable", CategorySubjective, 3, "Define industry benchmarks or financial limits."},
	{"from time to time", CategoryTimeline, 2, "Specify frequency or fixed intervals."},
	{"as soon as possible", CategoryTimeline, 3, "Replace with a defined number of days."},
	{"material", CategoryScope, 2, "Define what constitutes a material breach or change."},
	{"significant", CategoryScope, 2, "Quantify what is considered significant."},
	{"substantial", CategoryScope, 2, "Replace with numerical or objective thresholds."},
	{"at its discretion", CategoryDiscretion, 3, "Limit discretion with conditions or mutual consent."},
}

// Severity-score thresholds for the risk tier mapping.
const (
	highThreshold   = 6
	mediumThreshold = 3
)

// Explanation strings attached to an Analysis.
const (
	explanationFound = "Clause contains vague language that may lead to multiple interpretations and potential disputes."
	explanationClean = "No ambiguous legal language detected."
	explanationEmpty = "No clause text provided."
)

// Analysis is the advanced ambiguity report for one clause.
type Analysis struct {
	FoundTerms    []string   `json:"found_terms"`
	SeverityScore int        `json:"severity_score"`
	RiskLevel     string     `json:"risk_level"`
	Categories    []Category `json:"categories"`
	Suggestions   []string   `json:"suggestions"`
	Explanation   string     `json:"explanation"`
}

// Detect returns the lexicon phrases present in clauseText, in lexicon order.
// Matching is case-insensitive substring search.  Empty input yields nil.
func Detect(clauseText string) []string {
	if clauseText == "" {
		return nil
	}

	text := strings.ToLower(clauseText)
	var found []string
	for _, term := range terms {
		if strings.Contains(text, term.Phrase) {
			found = append(found, term.Phrase)
		}
	}
	return found
}

// Analyze performs the full ambiguity analysis: matched phrases, summed
// severity, risk tier (High ≥6, Medium ≥3, else Low), the union of
// categories and de-duplicated suggestions in first-seen lexicon order, and
// a fixed explanation string.
func Analyze(clauseText string) Analysis {
	if clauseText == "" {
		return Analysis{
			RiskLevel:   "Low",
			Explanation: explanationEmpty,
		}
	}

	text := strings.ToLower(clauseText)

	var (
		found       []string
		score       int
		categories  []Category
		suggestions []string
		seenCat     = map[Category]bool{}
		seenSug     = map[string]bool{}
	)

	for _, term := range terms {
		if !strings.Contains(text, term.Phrase) {
			continue
		}
		found = append(found, term.Phrase)
		score += term.Severity
		if !seenCat[term.Category] {
			seenCat[term.Category] = true
			categories = append(categories, term.Category)
		}
		if !seenSug[term.Suggestion] {
			seenSug[term.Suggestion] = true
			suggestions = append(suggestions, term.Suggestion)
		}
	}

	riskLevel := "Low"
	switch {
	case score >= highThreshold:
		riskLevel = "High"
	case score >= mediumThreshold:
		riskLevel = "Medium"
	}

	explanation := explanationClean
	if len(found) > 0 {
		explanation = explanationFound
	}

	return Analysis{
		FoundTerms:    found,
		SeverityScore: score,
		RiskLevel:     riskLevel,
		Categories:    categories,
		Suggestions:   suggestions,
		Explanation:   explanation,
	}
}

// Summary renders a one-paragraph human-readable digest of an Analysis.
func Summary(a Analysis) string {
	if len(a.FoundTerms) == 0 {
		return "No ambiguous language detected."
	}

	cats := make([]string, len(a.Categories))
	for i, c := range a.Categories {
		cats[i] = string(c)
	}

	return "Ambiguous terms detected: " + strings.Join(a.FoundTerms, ", ") +
		"\nRisk Level: " + a.RiskLevel +
		"\nCategories: " + strings.Join(cats, ", ")
}
