// SPDX-License-Identifier: Apache-2.0

// Package coverage cross-references generated test cases against extracted
// requirements and classifies how completely each requirement is exercised.
package coverage

// Status classifies how many of the three scenario classes a requirement's
// test cases represent.
type Status string

const (
	StatusFull    Status = "FULL"
	StatusPartial Status = "PARTIAL"
	StatusNone    Status = "NONE"
)

// The three recognized scenario classes, in canonical order.
const (
	ClassPositive = "positive"
	ClassNegative = "negative"
	ClassEdge     = "edge"
)

// Gap labels reported for absent scenario classes, in canonical order.
const (
	GapMissingPositive = "missing_positive"
	GapMissingNegative = "missing_negative"
	GapMissingEdge     = "missing_edge"
)

// TestCase is one generated test case linked back to a requirement. Fields
// beyond these are ignored by the aggregator.
type TestCase struct {
	TestID        string `json:"test_id"`
	RequirementID string `json:"requirement_id"`
	// Type is a free-text scenario label ("positive", "functional", ...).
	Type  string `json:"type"`
	Title string `json:"title"`
}

// Record is the coverage verdict for one requirement in one aggregation run.
// Records are derived, disposable views: re-running the aggregator replaces
// the whole set.
type Record struct {
	RequirementID string `json:"requirement_id"`
	// TestCaseIDs is the deduplicated, sorted set of linked test case ids.
	TestCaseIDs    []string `json:"test_case_ids"`
	CoverageStatus Status   `json:"coverage_status"`
	// CoveragePercent is one of 0, 33, 67, 100 given three scenario classes.
	CoveragePercent int `json:"coverage_percent"`
	// CoverageGaps lists absent classes in canonical order; empty for FULL.
	CoverageGaps []string `json:"coverage_gaps"`
	// Compliance passes through the requirement's regulation tags.
	Compliance []string `json:"compliance"`
	ValidIDs   bool     `json:"valid_ids"`
	CreatedAt  string   `json:"created_at"`
}
