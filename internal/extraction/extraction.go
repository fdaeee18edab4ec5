// SPDX-License-Identifier: Apache-2.0

package extraction

import "context"

// Document is the plain-text extraction input for one source file. Content is
// the decoded text; format-specific decoding happens in a DocumentReader.
type Document struct {
	Filename string
	Content  string
}

// Requirement is one assembler-finalized obligation statement extracted from a
// source document. Instances are immutable once emitted; downstream enrichment
// stages may add Compliance tags but never remove the statement.
type Requirement struct {
	// ID is a globally unique opaque token for the record.
	ID string `json:"id"`
	// RequirementID is the batch-sequential human-readable code ("REQ-001").
	RequirementID string `json:"requirement_id"`
	Filename      string `json:"filename,omitempty"`
	Statement     string `json:"statement"`
	// Compliance carries regulation tags attached by enrichment; the
	// extractor itself never sets it.
	Compliance []string `json:"compliance,omitempty"`
	CreatedAt  string   `json:"created_at"`
}

// Source describes raw, possibly undecoded input to a DocumentReader.
type Source struct {
	// Content is the raw file content.
	Content []byte
	Format  string
	// Filename identifies the source document (file path, URL, etc.).
	Filename string
}

// DocumentReader decodes one source format into plain text suitable for the
// extraction pipeline.
type DocumentReader interface {
	CanHandle(source Source) bool
	Read(ctx context.Context, source Source) (string, error)
	Name() string
}
