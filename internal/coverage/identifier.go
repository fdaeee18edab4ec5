// SPDX-License-Identifier: Apache-2.0

package coverage

import "regexp"

// Identifier patterns for traceability records. Requirement codes look like
// "REQ-7" or "REQ-042"; test case ids like "TC_POS_001".
var (
	requirementIDRe = regexp.MustCompile(`^REQ-\d+$`)
	testCaseIDRe    = regexp.MustCompile(`^TC_[A-Z]+_\d+$`)
)

// ValidRequirementID reports whether id fully matches the requirement pattern.
func ValidRequirementID(id string) bool {
	return requirementIDRe.MatchString(id)
}

// ValidTestCaseID reports whether id fully matches the test case pattern.
func ValidTestCaseID(id string) bool {
	return testCaseIDRe.MatchString(id)
}

// ValidIDs reports whether the requirement id and every test case id are
// well-formed. An empty test id collection is vacuously valid.
func ValidIDs(requirementID string, testIDs []string) bool {
	if !ValidRequirementID(requirementID) {
		return false
	}
	for _, id := range testIDs {
		if !ValidTestCaseID(id) {
			return false
		}
	}
	return true
}
