// SPDX-License-Identifier: Apache-2.0

package extraction

import "strings"

// EmissionPolicy selects how the assembler turns runs of accepted sentences
// into requirement statements. The two policies are mutually exclusive: a
// sentence is emitted either on its own or as part of a merged buffer, never
// both.
type EmissionPolicy int

const (
	// EmitSentences emits every accepted, dedup-new sentence as its own
	// requirement statement. Default.
	EmitSentences EmissionPolicy = iota
	// EmitMerged joins a maximal run of consecutive accepted sentences into
	// one multi-clause statement, emitted when the run ends.
	EmitMerged
)

// assemblerState is the explicit finite-state machine state of an Assembler.
type assemblerState int

const (
	stateEmpty assemblerState = iota
	stateAccumulating
)

// Assembler folds the filtered sentence stream of one document into finalized
// requirement statements. It holds no cross-document state of its own; the
// run-scoped Deduplicator is shared by the caller.
type Assembler struct {
	policy EmissionPolicy
	dedup  *Deduplicator
	state  assemblerState
	buffer []string
	out    []string
}

// NewAssembler creates an Assembler emitting through the given run-scoped
// Deduplicator.
func NewAssembler(policy EmissionPolicy, dedup *Deduplicator) *Assembler {
	return &Assembler{policy: policy, dedup: dedup}
}

// Accept feeds one filter-accepted sentence in document order.
func (a *Assembler) Accept(sentence string) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return
	}
	switch a.policy {
	case EmitMerged:
		a.buffer = append(a.buffer, sentence)
		a.state = stateAccumulating
	default:
		a.emit(sentence)
	}
}

// Reject notes a non-accepted sentence, which ends any accumulating run.
func (a *Assembler) Reject() {
	a.Flush()
}

// Flush finalizes a pending run. Call once more at end of document.
func (a *Assembler) Flush() {
	if a.state == stateAccumulating {
		a.emit(strings.Join(a.buffer, " "))
	}
	a.buffer = a.buffer[:0]
	a.state = stateEmpty
}

// Statements returns the finalized, deduplicated statements in emission order.
func (a *Assembler) Statements() []string {
	return a.out
}

func (a *Assembler) emit(statement string) {
	if statement == "" {
		return
	}
	if a.dedup.Admit(statement) {
		a.out = append(a.out, statement)
	}
}
