// Package clause implements the clause segmentation engine for the ClauseLens
// platform: text normalization, the heading/numbered/paragraph segmentation
// cascade with its sentence-split and OCR fallbacks, the segmentation-time
// clause type classifier, and the quality analyzer.  The engine is pure: no
// I/O, no logging, deterministic output for a given input.
package clause

// ─────────────────────────────────────────────────────────────────────────────
// Segmentation source
// ─────────────────────────────────────────────────────────────────────────────

// Source identifies which segmentation strategy produced a clause.
type Source string

const (
	SourceHeading       Source = "heading"
	SourceNumbered      Source = "numbered"
	SourceParagraph     Source = "paragraph"
	SourceSentenceSplit Source = "sentence-split"
	SourceOCRFallback   Source = "ocr-fallback"
)

func (s Source) IsValid() bool {
	switch s {
	case SourceHeading, SourceNumbered, SourceParagraph, SourceSentenceSplit, SourceOCRFallback:
		return true
	default:
		return false
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Clause type hints
// ─────────────────────────────────────────────────────────────────────────────

// Type is the broad category assigned to a clause at segmentation time.  It is
// a hint for presentation and routing; the risk engine runs its own narrower
// classification independently.
type Type string

const (
	TypeSecurityDeposit Type = "Security Deposit & Refund"
	TypePayment         Type = "Payment & Financial Terms"
	TypeMaintenance     Type = "Maintenance & Handover"
	TypeUsePremises     Type = "Use of Premises & Restrictions"
	TypeTermination     Type = "Termination"
	TypeNotice          Type = "Notice & Possession"
	TypeNonCompete      Type = "Non-Compete"
	TypeConfidentiality Type = "Confidentiality"
	TypeIndemnity       Type = "Indemnity & Liability"
	TypeGoverningLaw    Type = "Governing Law & Jurisdiction"
	TypeForceMajeure    Type = "Force Majeure"
	TypeGeneral         Type = "General"
)

func (t Type) String() string { return string(t) }

// ─────────────────────────────────────────────────────────────────────────────
// Review action
// ─────────────────────────────────────────────────────────────────────────────

// Action is the reviewer guidance derived from a clause's quality report.
type Action string

const (
	ActionReviewRequired   Action = "Review Required"
	ActionRewriteSuggested Action = "Rewrite Suggested"
	ActionLooksAcceptable  Action = "Looks Acceptable"
)

// ─────────────────────────────────────────────────────────────────────────────
// Clause record
// ─────────────────────────────────────────────────────────────────────────────

// Quality is the structural quality report computed for every clause.
type Quality struct {
	// Length is the clause text length in runes.
	Length int `json:"length"`

	// Sentences counts sentence-terminating punctuation marks in the text.
	Sentences int `json:"sentences"`

	// Score is the structural quality score, clamped to [0.4, 1.0] and
	// rounded to 2 decimals.
	Score float64 `json:"quality_score"`

	// Warnings lists structural anomalies, in detection order.
	Warnings []string `json:"warnings"`
}

// Clause is the central record emitted by the segmentation engine.  IDs are
// contiguous starting at 1 in emission order within a single extraction.
type Clause struct {
	ID       int     `json:"clause_id"`
	Title    string  `json:"title,omitempty"`
	Text     string  `json:"text"`
	TypeHint Type    `json:"type_hint"`
	Quality  Quality `json:"quality"`
	Action   Action  `json:"action"`
	Source   Source  `json:"source"`
}

// newClause assembles a fully-populated Clause for a text fragment: the type
// hint, quality report, and review action are derived here so every
// segmentation strategy emits identically-shaped records.
func newClause(id int, title, text string, source Source) Clause {
	quality := AnalyzeQuality(text)
	return Clause{
		ID:       id,
		Title:    title,
		Text:     text,
		TypeHint: GuessType(text),
		Quality:  quality,
		Action:   DecideAction(quality),
		Source:   source,
	}
}
