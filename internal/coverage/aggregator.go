// SPDX-License-Identifier: Apache-2.0

package coverage

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
)

// Aggregate computes one coverage Record per requirement, in requirement
// order. Grouping is left-outer: a requirement with no linked test cases still
// yields a record (status NONE); a test case referencing an unknown
// requirement is silently ignored. The function is pure: identical inputs
// produce identical records aside from CreatedAt.
func Aggregate(reqs []extraction.Requirement, tests []TestCase) []Record {
	byRequirement := make(map[string][]TestCase, len(reqs))
	for _, tc := range tests {
		byRequirement[tc.RequirementID] = append(byRequirement[tc.RequirementID], tc)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	records := make([]Record, 0, len(reqs))
	for _, req := range reqs {
		linked := byRequirement[req.RequirementID]

		classes := scenarioClasses(linked)
		covered := 0
		gaps := make([]string, 0, 3)
		for _, c := range []struct{ class, gap string }{
			{ClassPositive, GapMissingPositive},
			{ClassNegative, GapMissingNegative},
			{ClassEdge, GapMissingEdge},
		} {
			if classes[c.class] {
				covered++
			} else {
				gaps = append(gaps, c.gap)
			}
		}

		records = append(records, Record{
			RequirementID:   req.RequirementID,
			TestCaseIDs:     testCaseIDs(linked),
			CoverageStatus:  status(covered),
			CoveragePercent: int(math.Round(float64(covered) / 3 * 100)),
			CoverageGaps:    gaps,
			Compliance:      distinct(req.Compliance),
			ValidIDs:        ValidIDs(req.RequirementID, testCaseIDs(linked)),
			CreatedAt:       now,
		})
	}
	return records
}

// scenarioClasses derives the class label set for a requirement's test cases
// from two sources, unioned: each case's own type field, casefolded, and
// class-name substrings of each case's title.
func scenarioClasses(linked []TestCase) map[string]bool {
	classes := make(map[string]bool)
	for _, tc := range linked {
		if t := strings.ToLower(strings.TrimSpace(tc.Type)); t != "" {
			classes[t] = true
		}
		title := strings.ToLower(tc.Title)
		for _, class := range []string{ClassPositive, ClassNegative, ClassEdge} {
			if strings.Contains(title, class) {
				classes[class] = true
			}
		}
	}
	return classes
}

func status(covered int) Status {
	switch {
	case covered == 3:
		return StatusFull
	case covered > 0:
		return StatusPartial
	default:
		return StatusNone
	}
}

// testCaseIDs returns the deduplicated, sorted ids so that re-running the
// aggregator yields byte-identical output.
func testCaseIDs(linked []TestCase) []string {
	seen := make(map[string]struct{}, len(linked))
	ids := make([]string, 0, len(linked))
	for _, tc := range linked {
		if _, dup := seen[tc.TestID]; dup {
			continue
		}
		seen[tc.TestID] = struct{}{}
		ids = append(ids, tc.TestID)
	}
	sort.Strings(ids)
	return ids
}

func distinct(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
