package clause

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"RENTAL AGREEMENT TERMS", true},
		{"SECTION 1", true},
		{"NOTICE PERIOD", true},
		{"TERMS", false}, // exactly 5 runes, below threshold
		{"terms and conditions", false},
		{"Mixed Case Heading", false},
		{"1234 5678", false}, // no cased characters
		{strings.Repeat("A", 61), false},
		{strings.Repeat("A", 60), true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isHeading(tt.line))
		})
	}
}

func TestExtractClauses_Empty(t *testing.T) {
	assert.Empty(t, ExtractClauses(""))
	assert.Empty(t, ExtractClauses("   \n\t\n  "))
}

func TestExtractClauses_HeadingDocument(t *testing.T) {
	text := "SECTION 1\nThe tenant shall pay rent of ₹15000 monthly."

	clauses := ExtractClauses(text)
	require.Len(t, clauses, 1)

	c := clauses[0]
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, "SECTION 1", c.Title)
	assert.Equal(t, "The tenant shall pay rent of ₹15000 monthly.", c.Text)
	assert.Equal(t, TypePayment, c.TypeHint)
	assert.Equal(t, SourceHeading, c.Source)
	// Short clause body: the quality analyzer flags it for review.
	assert.Equal(t, ActionReviewRequired, c.Action)
}

func TestExtractClauses_NumberedDocument(t *testing.T) {
	text := strings.Join([]string{
		"1. The tenant shall pay rent of ₹15000 per month without fail.",
		"2. The tenant shall not sublet the premises to any third party.",
		"3. Either party may terminate this lease with thirty days written notice.",
	}, "\n")

	clauses := ExtractClauses(text)
	require.Len(t, clauses, 3)

	for i, c := range clauses {
		assert.Equal(t, i+1, c.ID)
		assert.Empty(t, c.Title)
		assert.Equal(t, SourceNumbered, c.Source)
	}

	assert.Equal(t, TypePayment, clauses[0].TypeHint)
	assert.Equal(t, TypeUsePremises, clauses[1].TypeHint)
	assert.Equal(t, TypeTermination, clauses[2].TypeHint)
}

func TestExtractClauses_NestedNumbering(t *testing.T) {
	text := "3.1 The lessee shall maintain the premises in good condition throughout.\n" +
		"3.2) All repair costs for damages caused by the lessee shall be borne by the lessee."

	clauses := ExtractClauses(text)
	require.Len(t, clauses, 2)
	assert.Equal(t, SourceNumbered, clauses[0].Source)
	assert.Equal(t, TypeMaintenance, clauses[0].TypeHint)
}

func TestExtractClauses_HeadingThenNumbered(t *testing.T) {
	text := strings.Join([]string{
		"OBLIGATIONS OF THE TENANT",
		"The tenant accepts the obligations set out in this section in full.",
		"1. The tenant shall pay all electricity charges as per meter reading.",
		"continued on the same clause without a new marker.",
	}, "\n")

	clauses := ExtractClauses(text)
	require.Len(t, clauses, 2)

	// First clause carries the heading as its title.
	assert.Equal(t, "OBLIGATIONS OF THE TENANT", clauses[0].Title)
	assert.Equal(t, SourceHeading, clauses[0].Source)

	// The numbered marker clears the pending title and absorbs the
	// continuation line.
	assert.Empty(t, clauses[1].Title)
	assert.Equal(t, SourceNumbered, clauses[1].Source)
	assert.Equal(t,
		"1. The tenant shall pay all electricity charges as per meter reading. continued on the same clause without a new marker.",
		clauses[1].Text)
}

func TestExtractClauses_BlankLinesIgnored(t *testing.T) {
	text := "The parties agree to the following terms.\n\n\nThis paragraph continues the same clause."

	clauses := ExtractClauses(text)
	require.Len(t, clauses, 1)
	assert.Equal(t, SourceParagraph, clauses[0].Source)
	assert.Equal(t,
		"The parties agree to the following terms. This paragraph continues the same clause.",
		clauses[0].Text)
}

func TestExtractClauses_SentenceSplitFallback(t *testing.T) {
	sentences := []string{
		"The employee shall report to the designated manager and perform all assigned duties.",
		"The employee shall receive compensation as agreed in the attached annexure.",
		"The employee shall not disclose any confidential information to third parties.",
		"The employer may terminate this agreement in the event of material breach.",
		"The employee shall return all company property upon separation from service.",
	}
	text := strings.Join(sentences, " ")

	clauses := ExtractClauses(text)
	require.Len(t, clauses, len(sentences))

	for i, c := range clauses {
		assert.Equal(t, i+1, c.ID)
		assert.Equal(t, SourceSentenceSplit, c.Source)
		assert.Empty(t, c.Title)
		assert.Equal(t, sentences[i], c.Text)
	}
}

func TestExtractClauses_SentenceSplitDropsShortFragments(t *testing.T) {
	text := "The employee shall perform the duties assigned by the manager diligently. " +
		"The employee shall obey. " + // 24 runes, filtered out
		"The employer may terminate this agreement for repeated material breach."

	clauses := ExtractClauses(text)
	require.Len(t, clauses, 2)
	assert.Equal(t, SourceSentenceSplit, clauses[0].Source)
	// IDs stay contiguous even though the middle fragment was dropped.
	assert.Equal(t, 1, clauses[0].ID)
	assert.Equal(t, 2, clauses[1].ID)
}

func TestExtractClauses_SentenceSplitNotAdoptedForSingleFragment(t *testing.T) {
	// Only one fragment survives the 40-rune filter, so the fallback
	// declines and the single paragraph clause is kept.
	text := "Short lead. The employee shall perform all duties assigned from day to day."

	clauses := ExtractClauses(text)
	require.Len(t, clauses, 1)
	assert.Equal(t, SourceParagraph, clauses[0].Source)
}

func TestExtractClauses_OCRFallback(t *testing.T) {
	text := "scanned rental agreement first page intro • " +
		"the tenant agrees to pay monthly rent of rupees twelve thousand only • " +
		"the landlord agrees to provide water and electricity connections • " +
		"the tenant shall vacate the premises upon thirty days written notice"

	clauses := ExtractClauses(text)
	require.Len(t, clauses, 4)
	for i, c := range clauses {
		assert.Equal(t, i+1, c.ID)
		assert.Equal(t, SourceOCRFallback, c.Source)
	}
	assert.Equal(t, "scanned rental agreement first page intro", clauses[0].Text)
}

func TestExtractClauses_OCRFallbackKeepsPunctuation(t *testing.T) {
	text := "the first obligation of the tenant is payment of rent! " +
		"the second obligation concerns upkeep of the premises? " +
		"the third obligation is the return of vacant possession."

	clauses := ExtractClauses(text)
	require.Len(t, clauses, 3)
	assert.Equal(t, SourceOCRFallback, clauses[0].Source)
	assert.True(t, strings.HasSuffix(clauses[0].Text, "!"))
	assert.True(t, strings.HasSuffix(clauses[1].Text, "?"))
}

func TestExtractClauses_NoFallbackQualifies(t *testing.T) {
	text := "This short paragraph has no structure markers at all."

	clauses := ExtractClauses(text)
	require.Len(t, clauses, 1)
	assert.Equal(t, SourceParagraph, clauses[0].Source)
	assert.Equal(t, text, clauses[0].Text)
}

// Every non-blank body line of a structured document survives, modulo
// whitespace joining, in the concatenated clause texts.
func TestExtractClauses_Coverage(t *testing.T) {
	lines := []string{
		"1. The tenant shall pay the monthly rent in advance.",
		"2. The tenant shall keep the premises in good condition.",
		"and return vacant possession on expiry of the lease.",
		"3. The landlord shall refund the security deposit after deductions.",
	}
	clauses := ExtractClauses(strings.Join(lines, "\n"))
	require.NotEmpty(t, clauses)

	var texts []string
	for _, c := range clauses {
		texts = append(texts, c.Text)
	}
	joined := strings.Join(texts, " ")
	for _, line := range lines {
		assert.Contains(t, joined, line)
	}
}

func TestExtractClauses_Deterministic(t *testing.T) {
	text := "EMPLOYMENT AGREEMENT TERMS\n1. The employee shall work full time.\n2. The employer may terminate for cause."
	first := ExtractClauses(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractClauses(text))
	}
}
