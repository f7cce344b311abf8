package search

// fuzzyThreshold is the share of aligned positions that must agree.
const fuzzyThreshold = 0.7

// maxFuzzyLengthDiff is the largest rune-length difference FuzzyMatch tolerates.
const maxFuzzyLengthDiff = 2

// FuzzyMatch reports whether a and b are identical, or close in length with
// more than 70% of their aligned positions holding the same rune.
//
// The comparison is position-aligned and not an edit distance: it forgives a
// wrong or missing rune near the end of a word, but an insertion or
// transposition near the start shifts every later position and fails.
// Callers are expected to pass lower-cased input.
func FuzzyMatch(a, b string) bool {
	if a == b {
		return true
	}
	ra, rb := []rune(a), []rune(b)
	diff := len(ra) - len(rb)
	if diff < 0 {
		diff = -diff
	}
	if diff > maxFuzzyLengthDiff {
		return false
	}

	shorter := len(ra)
	if len(rb) < shorter {
		shorter = len(rb)
	}
	if shorter == 0 {
		return false
	}

	same := 0
	for i := 0; i < shorter; i++ {
		if ra[i] == rb[i] {
			same++
		}
	}
	return float64(same)/float64(shorter) > fuzzyThreshold
}
