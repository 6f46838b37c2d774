package clause

import (
	"regexp"
	"strings"
)

// typeRule binds one clause type to the keyword pattern that claims it.
// Patterns are matched against lower-cased clause text.
type typeRule struct {
	label   Type
	pattern *regexp.Regexp
}

// typeRules is the ordered segmentation-time classification table.  Rules are
// evaluated top to bottom and the first match wins, so more specific lease
// and financial categories outrank the broad termination/notice buckets.
// The table covers both employment and lease vocabulary.
var typeRules = []typeRule{
	{TypeSecurityDeposit, regexp.MustCompile(`security deposit|advance deposit|refundable|refund`)},
	{TypePayment, regexp.MustCompile(`salary|wages|rent|payable|payment|electricity|charges|meter reading|rupees|₹`)},
	{TypeMaintenance, regexp.MustCompile(`maintain|maintenance|good condition|repair|restore|handing over|vacant possession|deliver the premises`)},
	{TypeUsePremises, regexp.MustCompile(`residential purpose|not sub-let|sublet|illegal activities|alteration|additional fittings|structures`)},
	{TypeTermination, regexp.MustCompile(`terminate|termination|dismiss|evicted|eviction|without notice|may terminate at any time`)},
	{TypeNotice, regexp.MustCompile(`notice|vacating|vacate|vacation|required to give|three months notice|90 days notice|30 days notice`)},
	{TypeNonCompete, regexp.MustCompile(`non[- ]?compete|restriction after termination`)},
	{TypeConfidentiality, regexp.MustCompile(`confidential|non-disclosure|nda`)},
	{TypeIndemnity, regexp.MustCompile(`indemnify|indemnity|hold harmless|liable`)},
	{TypeGoverningLaw, regexp.MustCompile(`governing law|jurisdiction|courts at`)},
	{TypeForceMajeure, regexp.MustCompile(`force majeure|act of god`)},
}

// GuessType assigns the segmentation-time type hint for a clause text by
// walking the ordered rule table.  Text matching no rule is General.
func GuessType(text string) Type {
	t := strings.ToLower(text)
	for _, rule := range typeRules {
		if rule.pattern.MatchString(t) {
			return rule.label
		}
	}
	return TypeGeneral
}
