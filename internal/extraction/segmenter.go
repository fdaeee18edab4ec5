// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"iter"
	"regexp"
	"strings"
)

// sentenceBoundaryRe marks whitespace that immediately follows sentence-terminal
// punctuation. RE2 has no lookbehind, so the match includes the terminal rune
// and the cut point is placed one byte past it ('.', '!' and '?' are one byte).
var sentenceBoundaryRe = regexp.MustCompile(`[.!?]\s+`)

// Sentences splits cleaned text into sentence-like units on punctuation
// boundaries. It is a regex fallback rather than linguistic sentence boundary
// detection; the requirement filter compensates for its imprecision. The
// returned sequence is lazy and can be ranged over more than once.
func Sentences(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for _, loc := range sentenceBoundaryRe.FindAllStringIndex(text, -1) {
			cut := loc[0] + 1
			piece := strings.TrimSpace(text[start:cut])
			if piece != "" && !yield(piece) {
				return
			}
			start = loc[1]
		}
		if piece := strings.TrimSpace(text[start:]); piece != "" {
			yield(piece)
		}
	}
}
