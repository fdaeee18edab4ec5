// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"regexp"
	"strings"
)

// FilterConfig holds the tunable data behind the requirement filter: length
// bounds and keyword sets. The decision procedure in IsCleanRequirement never
// changes; behavior is tuned by swapping this configuration.
type FilterConfig struct {
	// MinLength and MaxLength bound the normalized sentence length in runes.
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
	// HeadingMaxTokens is the word count at or below which a sentence with no
	// '.' anywhere is treated as a heading and rejected.
	HeadingMaxTokens int `yaml:"heading_max_tokens"`
	// BoilerplateKeywords reject a sentence on any case-insensitive hit.
	BoilerplateKeywords []string `yaml:"boilerplate_keywords"`
	// VerbWords must contain at least one whole-word, case-insensitive match.
	VerbWords []string `yaml:"verb_words"`
	// DomainKeywords must contain at least one case-insensitive substring hit.
	// Several entries overlap VerbWords on purpose: a sentence that passed the
	// verb check on is/are/has/have still needs a domain marker to survive.
	DomainKeywords []string `yaml:"domain_keywords"`
}

// DefaultFilterConfig is the stock heuristic tuning for compliance and
// healthcare requirement documents.
var DefaultFilterConfig = FilterConfig{
	MinLength:        30,
	MaxLength:        350,
	HeadingMaxTokens: 6,
	BoilerplateKeywords: []string{
		"acknowledgment", "preface", "contributors", "support",
		"copyright", "license", "foundation", "trademark",
		"methodology", "process framework", "catalog", "diagram",
	},
	VerbWords: []string{
		"is", "are", "has", "have", "shall", "must", "should",
		"require", "ensure", "will",
	},
	DomainKeywords: []string{
		"shall", "must", "should", "require", "ensure", "will",
		"system", "user", "data", "information system", "hipaa", "phi",
	},
}

var (
	dotLeaderRe  = regexp.MustCompile(`\.{3,}`)
	strayDigitRe = regexp.MustCompile(`\s*\d+\s*`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// Filter is the heuristic predicate deciding whether a sentence is a plausible
// requirement statement.
type Filter struct {
	cfg    FilterConfig
	verbRe *regexp.Regexp
}

// NewFilter compiles a Filter from the given configuration.
func NewFilter(cfg FilterConfig) *Filter {
	words := make([]string, len(cfg.VerbWords))
	for i, w := range cfg.VerbWords {
		words[i] = regexp.QuoteMeta(strings.ToLower(w))
	}
	return &Filter{
		cfg:    cfg,
		verbRe: regexp.MustCompile(`\b(` + strings.Join(words, "|") + `)\b`),
	}
}

// IsCleanRequirement reports whether text is plausibly a requirement
// statement. Rules apply in order; the first failing rule rejects.
func (f *Filter) IsCleanRequirement(text string) bool {
	t := strings.TrimSpace(text)

	// Strip layout artifacts: dot leaders, stray numeric runs, extra spaces.
	t = dotLeaderRe.ReplaceAllString(t, " ")
	t = strayDigitRe.ReplaceAllString(t, " ")
	t = multiSpaceRe.ReplaceAllString(t, " ")
	t = strings.TrimSpace(t)

	if n := len([]rune(t)); n < f.cfg.MinLength || n > f.cfg.MaxLength {
		return false
	}

	// Heading detection: short and without sentence punctuation.
	if len(strings.Fields(t)) <= f.cfg.HeadingMaxTokens && !strings.Contains(t, ".") {
		return false
	}

	lower := strings.ToLower(t)
	for _, k := range f.cfg.BoilerplateKeywords {
		if strings.Contains(lower, k) {
			return false
		}
	}

	if !f.verbRe.MatchString(lower) {
		return false
	}

	for _, k := range f.cfg.DomainKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
