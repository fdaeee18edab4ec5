// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reqtraceproj/reqtrace-mcp/internal/coverage"
	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
	"github.com/reqtraceproj/reqtrace-mcp/internal/schema"
)

var (
	coverageRequirements string
	coverageTestCases    string
	coverageOut          string
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Build the traceability matrix from requirement and test case records",
	Long: `Read requirement records and test case records from JSON files, validate
them against their contracts, and write one coverage record per requirement.
Test cases referencing unknown requirements are ignored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var reqs []extraction.Requirement
		if err := readJSON(coverageRequirements, &reqs); err != nil {
			return err
		}
		var tests []coverage.TestCase
		if coverageTestCases != "" {
			if err := readJSON(coverageTestCases, &tests); err != nil {
				return err
			}
		}

		validator, err := schema.NewValidator()
		if err != nil {
			return err
		}
		if err := validator.ValidateRequirements(reqs); err != nil {
			return fmt.Errorf("requirements validation failed: %w", err)
		}
		if err := validator.ValidateTestCases(tests); err != nil {
			return fmt.Errorf("test cases validation failed: %w", err)
		}

		records := coverage.Aggregate(reqs, tests)

		full := 0
		for _, r := range records {
			if r.CoverageStatus == coverage.StatusFull {
				full++
			}
		}
		logger.Info("coverage aggregation finished",
			zap.Int("requirements", len(reqs)),
			zap.Int("test_cases", len(tests)),
			zap.Int("fully_covered", full))

		if err := writeJSON(coverageOut, records); err != nil {
			return err
		}
		logger.Info("wrote traceability matrix", zap.String("path", coverageOut))
		return nil
	},
}

func init() {
	coverageCmd.Flags().StringVar(&coverageRequirements, "requirements", "requirements.json", "path to the requirement records")
	coverageCmd.Flags().StringVar(&coverageTestCases, "test-cases", "test_cases.json", "path to the test case records")
	coverageCmd.Flags().StringVarP(&coverageOut, "out", "o", "traceability_matrix.json", "output path for the coverage records")
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %q: %w", path, err)
	}
	return nil
}
