package clause

import (
	"math"
	"unicode/utf8"
)

// Quality warnings, in the order they are detected.
const (
	WarnTooShort    = "Clause is unusually short"
	WarnTooLong     = "Clause is unusually long (possible merge)"
	WarnNoSentences = "No sentence structure detected"
)

// Length thresholds for quality warnings, in runes.
const (
	shortClauseRunes = 50
	longClauseRunes  = 1200
)

// AnalyzeQuality computes the structural quality report for a clause text.
// The score rewards sentence count (full credit at 5 sentences) and length
// (full credit at 800 runes), clamped to [0.4, 1.0].
func AnalyzeQuality(text string) Quality {
	length := utf8.RuneCountInString(text)

	sentences := 0
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			sentences++
		}
	}

	var warnings []string
	if length < shortClauseRunes {
		warnings = append(warnings, WarnTooShort)
	}
	if length > longClauseRunes {
		warnings = append(warnings, WarnTooLong)
	}
	if sentences == 0 {
		warnings = append(warnings, WarnNoSentences)
	}

	score := float64(sentences)/5 + float64(length)/800
	score = math.Max(0.4, math.Min(1.0, score))

	return Quality{
		Length:    length,
		Sentences: sentences,
		Score:     round2(score),
		Warnings:  warnings,
	}
}

// DecideAction maps a quality report to reviewer guidance: any warning forces
// a review, a clean but low-scoring clause suggests a rewrite, and everything
// else passes.
func DecideAction(q Quality) Action {
	if len(q.Warnings) > 0 {
		return ActionReviewRequired
	}
	if q.Score < 0.6 {
		return ActionRewriteSuggested
	}
	return ActionLooksAcceptable
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
