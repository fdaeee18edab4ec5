// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Extractor runs the requirement extraction chain: clean lines, segment into
// sentences, filter, deduplicate, assemble. It is stateless between runs; all
// run-scoped state (dedup set, id counter) lives inside a single Run call, so
// repeated or concurrent runs do not leak into each other.
type Extractor struct {
	filter *Filter
	policy EmissionPolicy
}

// NewExtractor creates an Extractor with the given heuristic tuning and
// emission policy.
func NewExtractor(cfg FilterConfig, policy EmissionPolicy) *Extractor {
	return &Extractor{filter: NewFilter(cfg), policy: policy}
}

// RunResult is the output of one extraction run.
type RunResult struct {
	Requirements []Requirement
	// SentenceCount is the number of sentence units seen across all
	// documents before filtering.
	SentenceCount int
}

// Run extracts requirement records from the given documents. Requirement
// codes are sequential across the whole batch, and the deduplication set is
// shared across documents, so the same statement appearing in two files is
// emitted once.
func (e *Extractor) Run(docs ...Document) []Requirement {
	return e.RunWithMeta(docs...).Requirements
}

// RunWithMeta is Run plus pipeline counters.
func (e *Extractor) RunWithMeta(docs ...Document) RunResult {
	dedup := NewDeduplicator()
	now := time.Now().UTC().Format(time.RFC3339)

	result := RunResult{Requirements: make([]Requirement, 0)}
	for _, doc := range docs {
		asm := NewAssembler(e.policy, dedup)
		text := strings.Join(CleanLines(doc.Content), " ")
		for sentence := range Sentences(text) {
			result.SentenceCount++
			if e.filter.IsCleanRequirement(sentence) {
				asm.Accept(sentence)
			} else {
				asm.Reject()
			}
		}
		asm.Flush()

		for _, statement := range asm.Statements() {
			result.Requirements = append(result.Requirements, Requirement{
				ID:            uuid.NewString(),
				RequirementID: fmt.Sprintf("REQ-%03d", len(result.Requirements)+1),
				Filename:      doc.Filename,
				Statement:     statement,
				CreatedAt:     now,
			})
		}
	}
	return result
}
