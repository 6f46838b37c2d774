package clause

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ─────────────────────────────────────────────────────────────────────────────
// Line classification
// ─────────────────────────────────────────────────────────────────────────────

// reNumbered matches ordinal clause prefixes: "1. ", "2) ", "3.1 ", "4.2.1. ".
var reNumbered = regexp.MustCompile(`^\d+(\.\d+)*[).]?\s+`)

// isHeading reports whether a trimmed line is a section heading: 6–60 runes,
// at least one cased character, and no lower-case characters anywhere.
func isHeading(line string) bool {
	n := utf8.RuneCountInString(line)
	if n <= 5 || n > 60 {
		return false
	}
	hasCased := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased
}

// ─────────────────────────────────────────────────────────────────────────────
// Segmentation cascade
// ─────────────────────────────────────────────────────────────────────────────

// fallbackFunc is one fallback segmentation strategy: it inspects a text block
// and either claims it, returning the clause partition, or declines with nil.
type fallbackFunc func(block string) []Clause

// ExtractClauses partitions raw contract text into an ordered sequence of
// clause records.  The text is normalized first, then segmented line-by-line
// on headings and numbered markers.  When that structured pass finds no
// boundaries at all (a single run-on block), two fallbacks are tried in
// order: a sentence-level split on clause-initiating legal phrases, then a
// coarse re-split tuned for degraded OCR text.  If neither claims the block,
// the single structured clause is returned as-is.
//
// Empty input yields an empty sequence, never an error.  The result is a pure
// function of the input text.
func ExtractClauses(text string) []Clause {
	text = Normalize(text)
	if text == "" {
		return nil
	}

	clauses := segmentLines(text)
	if len(clauses) != 1 {
		return clauses
	}

	// The sentence fallback works on the space-joined clause body; the OCR
	// fallback re-splits the normalized text itself so newline runs are
	// still visible as boundaries.
	for _, fallback := range []struct {
		split fallbackFunc
		block string
	}{
		{splitSentenceTriggers, clauses[0].Text},
		{splitDegradedText, text},
	} {
		if out := fallback.split(fallback.block); out != nil {
			return out
		}
	}

	return clauses
}

// segmentLines is the structured (heading / numbered / paragraph) pass.  It
// walks the normalized text line-by-line, closing the accumulating clause at
// every heading or numbered marker.  Blank lines are skipped and contribute
// nothing.  Always emits at least one clause for non-blank input.
func segmentLines(text string) []Clause {
	var (
		clauses []Clause
		buf     []string
		title   string
		source  = SourceParagraph
	)

	flush := func() {
		if len(buf) == 0 {
			return
		}
		body := strings.Join(buf, " ")
		clauses = append(clauses, newClause(len(clauses)+1, title, body, source))
		buf = buf[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isHeading(line) {
			flush()
			title = line
			source = SourceHeading
			continue
		}

		if reNumbered.MatchString(line) {
			flush()
			buf = append(buf, line)
			title = ""
			source = SourceNumbered
			continue
		}

		buf = append(buf, line)
	}
	flush()

	return clauses
}

// ─────────────────────────────────────────────────────────────────────────────
// Sentence-split fallback
// ─────────────────────────────────────────────────────────────────────────────

// reSentenceTrigger locates clause boundaries inside a run-on block: a
// sentence-ending period, whitespace, then one of the clause-initiating legal
// phrases.  The whitespace is captured so the cut can keep the period with
// the left fragment and start the right fragment at the trigger phrase.
var reSentenceTrigger = regexp.MustCompile(
	`(?i)\.(\s+)(?:the\s+(?:employee|employer)|employee\s+shall|employer\s+may|shall\s+receive|shall\s+not)`)

// minSentenceFragmentRunes discards trailing scraps left over by the cut.
const minSentenceFragmentRunes = 40

// splitSentenceTriggers cuts a run-on block at legal-phrase sentence
// boundaries.  Fragments shorter than 40 runes are dropped.  The result is
// adopted only when at least 2 fragments survive; otherwise nil.
func splitSentenceTriggers(block string) []Clause {
	matches := reSentenceTrigger.FindAllStringSubmatchIndex(block, -1)
	if len(matches) == 0 {
		return nil
	}

	var fragments []string
	prev := 0
	for _, m := range matches {
		// m[2]:m[3] is the whitespace group; the left fragment keeps the
		// period, the right fragment starts at the trigger phrase.
		fragments = append(fragments, block[prev:m[2]])
		prev = m[3]
	}
	fragments = append(fragments, block[prev:])

	var clauses []Clause
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if utf8.RuneCountInString(f) < minSentenceFragmentRunes {
			continue
		}
		clauses = append(clauses, newClause(len(clauses)+1, "", f, SourceSentenceSplit))
	}

	if len(clauses) < 2 {
		return nil
	}
	return clauses
}

// ─────────────────────────────────────────────────────────────────────────────
// OCR / degraded-text fallback
// ─────────────────────────────────────────────────────────────────────────────

// reRoughBoundary matches coarse fragment boundaries in degraded text:
// terminal punctuation followed by whitespace (the punctuation mark is
// captured and stays with the left fragment), or a run of newline, bullet,
// or dash characters (the run is removed).
var reRoughBoundary = regexp.MustCompile(`([.!?])\s+|[\n•\-–—]+`)

// minRoughFragmentRunes filters out stamps, page numbers, and similar noise.
const minRoughFragmentRunes = 25

// splitDegradedText re-splits scanner/OCR output that carries no usable line
// structure.  Fragments shorter than 25 runes are treated as noise and
// dropped.  The result is adopted only when at least 3 fragments survive;
// otherwise nil.
func splitDegradedText(block string) []Clause {
	block = strings.TrimSpace(block)

	matches := reRoughBoundary.FindAllStringSubmatchIndex(block, -1)

	var fragments []string
	prev := 0
	for _, m := range matches {
		if m[2] >= 0 {
			// Punctuation alternative: keep the mark with the left fragment.
			fragments = append(fragments, block[prev:m[3]])
		} else {
			fragments = append(fragments, block[prev:m[0]])
		}
		prev = m[1]
	}
	fragments = append(fragments, block[prev:])

	var clauses []Clause
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if utf8.RuneCountInString(f) < minRoughFragmentRunes {
			continue
		}
		clauses = append(clauses, newClause(len(clauses)+1, "", f, SourceOCRFallback))
	}

	if len(clauses) < 3 {
		return nil
	}
	return clauses
}
