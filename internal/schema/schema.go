// SPDX-License-Identifier: Apache-2.0

// Package schema validates requirement and test case records against their
// CUE contracts before aggregation. A malformed record is surfaced as a
// labeled error instead of silently corrupting the coverage matrix.
package schema

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/reqtraceproj/reqtrace-mcp/internal/coverage"
	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
)

// definitions holds the record contracts. Both are open structs: collaborator
// stages may attach extra fields, which the core ignores.
const definitions = `
#Requirement: {
	id:             string & !=""
	requirement_id: string & !=""
	filename?:      string
	statement:      string & !=""
	compliance?: [...string]
	created_at: string & !=""
	...
}

#TestCase: {
	test_id:        string & !=""
	requirement_id: string & !=""
	type?:          string
	title?:         string
	...
}
`

// Validator checks records against the compiled CUE definitions.
type Validator struct {
	ctx         *cue.Context
	requirement cue.Value
	testCase    cue.Value
}

// NewValidator compiles the record contracts.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()
	defs := ctx.CompileString(definitions)
	if err := defs.Err(); err != nil {
		return nil, fmt.Errorf("compile record schemas: %w", err)
	}
	return &Validator{
		ctx:         ctx,
		requirement: defs.LookupPath(cue.ParsePath("#Requirement")),
		testCase:    defs.LookupPath(cue.ParsePath("#TestCase")),
	}, nil
}

// ValidateRequirements checks every requirement record, reporting the first
// violation with its position and requirement code.
func (v *Validator) ValidateRequirements(reqs []extraction.Requirement) error {
	for i, r := range reqs {
		if err := v.validate(v.requirement, r); err != nil {
			return fmt.Errorf("invalid requirement record %d (%q): %w", i, r.RequirementID, err)
		}
	}
	return nil
}

// ValidateTestCases checks every test case record, reporting the first
// violation with its position and test id.
func (v *Validator) ValidateTestCases(tests []coverage.TestCase) error {
	for i, tc := range tests {
		if err := v.validate(v.testCase, tc); err != nil {
			return fmt.Errorf("invalid test case record %d (%q): %w", i, tc.TestID, err)
		}
	}
	return nil
}

func (v *Validator) validate(contract cue.Value, record interface{}) error {
	val := v.ctx.Encode(record)
	if err := val.Err(); err != nil {
		return err
	}
	return contract.Unify(val).Validate(cue.Concrete(true))
}
