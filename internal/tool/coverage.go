// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reqtraceproj/reqtrace-mcp/internal/coverage"
	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
	"github.com/reqtraceproj/reqtrace-mcp/internal/schema"
)

// MetadataAnalyzeCoverage describes the analyze_coverage tool.
var MetadataAnalyzeCoverage = &mcp.Tool{
	Name: "analyze_coverage",
	Description: "Cross-reference test cases against requirements and produce one coverage record " +
		"per requirement. Coverage is classified over three scenario classes (positive, negative, edge): " +
		"FULL when all three are represented, PARTIAL when some are, NONE when none are. Each record " +
		"carries the linked test case ids, the missing-class gaps, the requirement's compliance tags, " +
		"and an id well-formedness flag. Test cases referencing unknown requirements are ignored.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"requirements"},
		"properties": map[string]interface{}{
			"requirements": map[string]interface{}{
				"type":        "array",
				"description": "Requirement records as produced by extract_requirements (optionally enriched with compliance tags).",
				"items":       map[string]interface{}{"type": "object"},
			},
			"test_cases": map[string]interface{}{
				"type":        "array",
				"description": "Test case records with test_id, requirement_id, type and title fields. Additional fields are ignored.",
				"items":       map[string]interface{}{"type": "object"},
			},
		},
	},
}

// InputAnalyzeCoverage is the input for the AnalyzeCoverage tool.
type InputAnalyzeCoverage struct {
	Requirements []extraction.Requirement `json:"requirements"`
	TestCases    []coverage.TestCase      `json:"test_cases"`
}

// OutputAnalyzeCoverage is the output for the AnalyzeCoverage tool.
type OutputAnalyzeCoverage struct {
	// Records holds one coverage verdict per requirement, in input order.
	Records []coverage.Record `json:"records"`
	// RequirementCount is the number of requirements analyzed.
	RequirementCount int `json:"requirement_count"`
	// OrphanTestCount is the number of test cases whose requirement_id
	// matched no requirement.
	OrphanTestCount int `json:"orphan_test_count"`
}

// AnalyzeCoverage validates the input records against their contracts and
// aggregates test cases into coverage records.
func AnalyzeCoverage(_ context.Context, _ *mcp.CallToolRequest, input InputAnalyzeCoverage) (*mcp.CallToolResult, OutputAnalyzeCoverage, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, OutputAnalyzeCoverage{}, err
	}
	if err := validator.ValidateRequirements(input.Requirements); err != nil {
		return nil, OutputAnalyzeCoverage{}, fmt.Errorf("requirements validation failed: %w", err)
	}
	if err := validator.ValidateTestCases(input.TestCases); err != nil {
		return nil, OutputAnalyzeCoverage{}, fmt.Errorf("test cases validation failed: %w", err)
	}

	records := coverage.Aggregate(input.Requirements, input.TestCases)

	known := make(map[string]struct{}, len(input.Requirements))
	for _, r := range input.Requirements {
		known[r.RequirementID] = struct{}{}
	}
	orphans := 0
	for _, tc := range input.TestCases {
		if _, ok := known[tc.RequirementID]; !ok {
			orphans++
		}
	}

	return nil, OutputAnalyzeCoverage{
		Records:          records,
		RequirementCount: len(input.Requirements),
		OrphanTestCount:  orphans,
	}, nil
}
