// SPDX-License-Identifier: Apache-2.0

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqtraceproj/reqtrace-mcp/internal/coverage"
	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
	"github.com/reqtraceproj/reqtrace-mcp/internal/schema"
)

func validRequirement() extraction.Requirement {
	return extraction.Requirement{
		ID:            "3f1c9d2e",
		RequirementID: "REQ-001",
		Filename:      "policy.txt",
		Statement:     "The system shall log all access events.",
		CreatedAt:     "2026-08-29T00:00:00Z",
	}
}

func TestValidator_Requirements(t *testing.T) {
	v, err := schema.NewValidator()
	require.NoError(t, err)

	t.Run("valid records pass", func(t *testing.T) {
		reqs := []extraction.Requirement{validRequirement()}
		assert.NoError(t, v.ValidateRequirements(reqs))
	})

	t.Run("empty collection passes", func(t *testing.T) {
		assert.NoError(t, v.ValidateRequirements(nil))
	})

	t.Run("empty statement is rejected", func(t *testing.T) {
		r := validRequirement()
		r.Statement = ""
		err := v.ValidateRequirements([]extraction.Requirement{r})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid requirement record 0 ("REQ-001")`)
	})

	t.Run("missing created_at is rejected", func(t *testing.T) {
		r := validRequirement()
		r.CreatedAt = ""
		assert.Error(t, v.ValidateRequirements([]extraction.Requirement{r}))
	})

	t.Run("compliance tags are allowed", func(t *testing.T) {
		r := validRequirement()
		r.Compliance = []string{"HIPAA"}
		assert.NoError(t, v.ValidateRequirements([]extraction.Requirement{r}))
	})
}

func TestValidator_TestCases(t *testing.T) {
	v, err := schema.NewValidator()
	require.NoError(t, err)

	t.Run("valid records pass", func(t *testing.T) {
		tests := []coverage.TestCase{
			{TestID: "TC_POS_001", RequirementID: "REQ-001", Type: "positive", Title: "Happy path"},
		}
		assert.NoError(t, v.ValidateTestCases(tests))
	})

	t.Run("missing test_id is rejected with position", func(t *testing.T) {
		tests := []coverage.TestCase{
			{TestID: "TC_POS_001", RequirementID: "REQ-001"},
			{RequirementID: "REQ-001"},
		}
		err := v.ValidateTestCases(tests)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid test case record 1")
	})

	t.Run("missing requirement_id is rejected", func(t *testing.T) {
		tests := []coverage.TestCase{{TestID: "TC_POS_001"}}
		assert.Error(t, v.ValidateTestCases(tests))
	})
}
