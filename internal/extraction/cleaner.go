// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"regexp"
	"strings"
)

var (
	pageLabelRe  = regexp.MustCompile(`(?i)^page\s*\d+`)
	bareNumberRe = regexp.MustCompile(`^\d+$`)
)

// CleanLines strips header/footer noise from raw document text: blank lines,
// "page N" labels, and bare page numbers. Lines come back trimmed, in order.
// Case and punctuation are left untouched so the assembler can preserve the
// original wording in the final statement.
func CleanLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	clean := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if pageLabelRe.MatchString(line) {
			continue
		}
		if bareNumberRe.MatchString(line) {
			continue
		}
		clean = append(clean, line)
	}
	return clean
}
