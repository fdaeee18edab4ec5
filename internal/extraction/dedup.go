// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"regexp"
	"strings"
)

// asciiPunctuation is the punctuation set stripped during canonicalization.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// NormalizeForDedup canonicalizes a statement for duplicate comparison:
// casefold, trim, collapse whitespace runs, strip punctuation. Two statements
// are duplicates iff their canonical keys are equal.
func NormalizeForDedup(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = whitespaceRunRe.ReplaceAllString(t, " ")
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, t)
}

// Deduplicator tracks canonical keys seen within one extraction run. Assembly
// order decides which of two near-duplicates survives: first wins.
type Deduplicator struct {
	seen map[string]struct{}
}

// NewDeduplicator creates an empty run-scoped Deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]struct{})}
}

// Admit reports whether the statement's canonical key is new, recording it as
// seen when it is.
func (d *Deduplicator) Admit(statement string) bool {
	key := NormalizeForDedup(statement)
	if _, dup := d.seen[key]; dup {
		return false
	}
	d.seen[key] = struct{}{}
	return true
}
