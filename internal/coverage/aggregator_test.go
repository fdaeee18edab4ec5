// SPDX-License-Identifier: Apache-2.0

package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqtraceproj/reqtrace-mcp/internal/coverage"
	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
)

func req(code string, tags ...string) extraction.Requirement {
	return extraction.Requirement{
		ID:            "id-" + code,
		RequirementID: code,
		Statement:     "The system shall do something about " + code + ".",
		Compliance:    tags,
		CreatedAt:     "2026-08-29T00:00:00Z",
	}
}

func TestAggregate_FullCoverage(t *testing.T) {
	reqs := []extraction.Requirement{req("REQ-001", "HIPAA")}
	tests := []coverage.TestCase{
		{TestID: "TC_POS_001", RequirementID: "REQ-001", Type: "Positive", Title: "Happy path"},
		{TestID: "TC_NEG_002", RequirementID: "REQ-001", Type: "Negative", Title: "Invalid input"},
		{TestID: "TC_EDGE_003", RequirementID: "REQ-001", Type: "Edge", Title: "Boundary"},
	}

	records := coverage.Aggregate(reqs, tests)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "REQ-001", r.RequirementID)
	assert.Equal(t, coverage.StatusFull, r.CoverageStatus)
	assert.Equal(t, 100, r.CoveragePercent)
	assert.Empty(t, r.CoverageGaps)
	assert.Equal(t, []string{"TC_EDGE_003", "TC_NEG_002", "TC_POS_001"}, r.TestCaseIDs, "ids are sorted")
	assert.Equal(t, []string{"HIPAA"}, r.Compliance)
	assert.True(t, r.ValidIDs)
	assert.NotEmpty(t, r.CreatedAt)
}

func TestAggregate_PartialCoverage(t *testing.T) {
	reqs := []extraction.Requirement{req("REQ-002")}
	tests := []coverage.TestCase{
		{TestID: "TC_POS_001", RequirementID: "REQ-002", Type: "positive", Title: "Login works"},
	}

	records := coverage.Aggregate(reqs, tests)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, coverage.StatusPartial, r.CoverageStatus)
	assert.Equal(t, 33, r.CoveragePercent)
	assert.Equal(t, []string{"missing_negative", "missing_edge"}, r.CoverageGaps)
}

func TestAggregate_TwoOfThreeClasses(t *testing.T) {
	reqs := []extraction.Requirement{req("REQ-003")}
	tests := []coverage.TestCase{
		{TestID: "TC_POS_001", RequirementID: "REQ-003", Type: "positive"},
		{TestID: "TC_NEG_002", RequirementID: "REQ-003", Type: "negative"},
	}

	records := coverage.Aggregate(reqs, tests)
	require.Len(t, records, 1)
	assert.Equal(t, 67, records[0].CoveragePercent)
	assert.Equal(t, []string{"missing_edge"}, records[0].CoverageGaps)
}

func TestAggregate_NoLinkedTests(t *testing.T) {
	records := coverage.Aggregate([]extraction.Requirement{req("REQ-004")}, nil)
	require.Len(t, records, 1, "left-outer semantics: uncovered requirements still get a record")

	r := records[0]
	assert.Equal(t, coverage.StatusNone, r.CoverageStatus)
	assert.Equal(t, 0, r.CoveragePercent)
	assert.Equal(t, []string{"missing_positive", "missing_negative", "missing_edge"}, r.CoverageGaps)
	assert.Empty(t, r.TestCaseIDs)
	assert.True(t, r.ValidIDs, "empty test id collection is vacuously valid")
}

func TestAggregate_ClassFromTitleSubstring(t *testing.T) {
	reqs := []extraction.Requirement{req("REQ-005")}
	tests := []coverage.TestCase{
		{TestID: "TC_GEN_001", RequirementID: "REQ-005", Type: "Functional", Title: "Negative test for login"},
		{TestID: "TC_GEN_002", RequirementID: "REQ-005", Type: "Functional", Title: "Edge case: empty password"},
	}

	records := coverage.Aggregate(reqs, tests)
	require.Len(t, records, 1)
	assert.Equal(t, coverage.StatusPartial, records[0].CoverageStatus)
	assert.Equal(t, 67, records[0].CoveragePercent)
	assert.Equal(t, []string{"missing_positive"}, records[0].CoverageGaps)
}

func TestAggregate_OrphanTestCasesIgnored(t *testing.T) {
	reqs := []extraction.Requirement{req("REQ-006")}
	tests := []coverage.TestCase{
		{TestID: "TC_POS_001", RequirementID: "REQ-999", Type: "positive"},
	}

	records := coverage.Aggregate(reqs, tests)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].TestCaseIDs, "orphan test case appears nowhere")
	assert.Equal(t, coverage.StatusNone, records[0].CoverageStatus)
}

func TestAggregate_DuplicateTestIDsCollapse(t *testing.T) {
	reqs := []extraction.Requirement{req("REQ-007")}
	tests := []coverage.TestCase{
		{TestID: "TC_POS_001", RequirementID: "REQ-007", Type: "positive"},
		{TestID: "TC_POS_001", RequirementID: "REQ-007", Type: "positive"},
	}

	records := coverage.Aggregate(reqs, tests)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"TC_POS_001"}, records[0].TestCaseIDs)
}

func TestAggregate_InvalidIDsFlagged(t *testing.T) {
	reqs := []extraction.Requirement{req("REQ_008")}
	tests := []coverage.TestCase{
		{TestID: "TC_POS_001", RequirementID: "REQ_008", Type: "positive"},
	}

	records := coverage.Aggregate(reqs, tests)
	require.Len(t, records, 1)
	assert.False(t, records[0].ValidIDs, "underscored requirement code is malformed")
}

func TestAggregate_CompliancePassThrough(t *testing.T) {
	reqs := []extraction.Requirement{req("REQ-009", "HIPAA", "GDPR", "HIPAA")}
	records := coverage.Aggregate(reqs, nil)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"HIPAA", "GDPR"}, records[0].Compliance, "tags are distinct, order preserved")
}

func TestAggregate_EmptyInputs(t *testing.T) {
	assert.Empty(t, coverage.Aggregate(nil, nil))
	assert.Empty(t, coverage.Aggregate(nil, []coverage.TestCase{{TestID: "TC_POS_001", RequirementID: "REQ-001"}}))
}

func TestAggregate_PercentBounds(t *testing.T) {
	reqs := []extraction.Requirement{req("REQ-010"), req("REQ-011"), req("REQ-012"), req("REQ-013")}
	tests := []coverage.TestCase{
		{TestID: "TC_POS_001", RequirementID: "REQ-011", Type: "positive"},
		{TestID: "TC_POS_002", RequirementID: "REQ-012", Type: "positive"},
		{TestID: "TC_NEG_003", RequirementID: "REQ-012", Type: "negative"},
		{TestID: "TC_POS_004", RequirementID: "REQ-013", Type: "positive"},
		{TestID: "TC_NEG_005", RequirementID: "REQ-013", Type: "negative"},
		{TestID: "TC_EDGE_006", RequirementID: "REQ-013", Type: "edge"},
	}

	records := coverage.Aggregate(reqs, tests)
	require.Len(t, records, 4)

	percents := make([]int, len(records))
	for i, r := range records {
		percents[i] = r.CoveragePercent
		assert.GreaterOrEqual(t, r.CoveragePercent, 0)
		assert.LessOrEqual(t, r.CoveragePercent, 100)
		assert.Equal(t, r.CoverageStatus == coverage.StatusFull, len(r.CoverageGaps) == 0,
			"FULL iff no gaps")
	}
	assert.Equal(t, []int{0, 33, 67, 100}, percents)
}

func TestAggregate_Deterministic(t *testing.T) {
	reqs := []extraction.Requirement{req("REQ-014", "HIPAA"), req("REQ-015")}
	tests := []coverage.TestCase{
		{TestID: "TC_NEG_002", RequirementID: "REQ-014", Type: "negative"},
		{TestID: "TC_POS_001", RequirementID: "REQ-014", Type: "positive"},
	}

	first := coverage.Aggregate(reqs, tests)
	second := coverage.Aggregate(reqs, tests)
	for i := range first {
		first[i].CreatedAt = ""
		second[i].CreatedAt = ""
	}
	assert.Equal(t, first, second, "identical inputs yield identical records aside from timestamps")
}
