package clause

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeQuality_CountsAndScore(t *testing.T) {
	// 80 runes, 1 sentence: raw score 1/5 + 80/800 = 0.3, clamped to 0.4.
	text := strings.Repeat("a", 79) + "."
	q := AnalyzeQuality(text)

	assert.Equal(t, 80, q.Length)
	assert.Equal(t, 1, q.Sentences)
	assert.Equal(t, 0.4, q.Score)
	assert.Empty(t, q.Warnings)
}

func TestAnalyzeQuality_ScoreClampedAtOne(t *testing.T) {
	// 10 sentences and 800 runes push the raw score well past 1.0.
	sentence := strings.Repeat("x", 79) + "."
	q := AnalyzeQuality(strings.Repeat(sentence, 10))

	assert.Equal(t, 800, q.Length)
	assert.Equal(t, 10, q.Sentences)
	assert.Equal(t, 1.0, q.Score)
}

func TestAnalyzeQuality_LengthInRunes(t *testing.T) {
	q := AnalyzeQuality("₹₹₹₹₹")
	assert.Equal(t, 5, q.Length)
}

func TestAnalyzeQuality_Warnings(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"short with sentence",
			"Pay the rent.",
			[]string{WarnTooShort},
		},
		{
			"short without sentence",
			"payment terms",
			[]string{WarnTooShort, WarnNoSentences},
		},
		{
			"long",
			strings.Repeat("The tenant shall pay rent on the first of every month. ", 25),
			[]string{WarnTooLong},
		},
		{
			"no sentence structure",
			strings.Repeat("word ", 15),
			[]string{WarnNoSentences},
		},
		{
			"clean",
			"The tenant shall pay the monthly rent on or before the fifth day.",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeQuality(tt.text).Warnings)
		})
	}
}

func TestDecideAction(t *testing.T) {
	// Any warning forces review, even with a perfect score.
	assert.Equal(t, ActionReviewRequired,
		DecideAction(Quality{Score: 1.0, Warnings: []string{WarnTooLong}}))

	assert.Equal(t, ActionRewriteSuggested, DecideAction(Quality{Score: 0.4}))
	assert.Equal(t, ActionRewriteSuggested, DecideAction(Quality{Score: 0.59}))
	assert.Equal(t, ActionLooksAcceptable, DecideAction(Quality{Score: 0.6}))
	assert.Equal(t, ActionLooksAcceptable, DecideAction(Quality{Score: 1.0}))
}
