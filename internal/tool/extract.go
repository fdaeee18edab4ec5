// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction/readers"
)

// MetadataExtractRequirements describes the extract_requirements tool.
var MetadataExtractRequirements = &mcp.Tool{
	Name: "extract_requirements",
	Description: "Extract candidate requirement statements from a document. " +
		"The document is decoded to plain text (supported formats: html, xml, json, yaml, plaintext), " +
		"cleaned of headers/footers/page numbers, segmented into sentences, and filtered by " +
		"requirement heuristics. Each surviving statement becomes a requirement record with a " +
		"batch-sequential code (REQ-001, REQ-002, ...). Duplicate statements are dropped, first wins.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw content of the document to extract from",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"description": "Format hint for the document. One of: html, xml, json, yaml, plaintext. If omitted, auto-detection is used.",
				"enum":        []string{"html", "xml", "json", "yaml", "plaintext"},
			},
			"filename": map[string]interface{}{
				"type":        "string",
				"description": "Optional source identifier (file path, URL, etc.) recorded on each requirement.",
			},
			"merge_adjacent": map[string]interface{}{
				"type":        "boolean",
				"description": "Merge runs of consecutive requirement-like sentences into one multi-clause record instead of emitting each sentence separately.",
			},
		},
	},
}

// InputExtractRequirements is the input for the ExtractRequirements tool.
type InputExtractRequirements struct {
	Content       string `json:"content"`
	Format        string `json:"format"`
	Filename      string `json:"filename"`
	MergeAdjacent bool   `json:"merge_adjacent"`
}

// OutputExtractRequirements is the output for the ExtractRequirements tool.
type OutputExtractRequirements struct {
	// Requirements is the ordered list of extracted requirement records.
	Requirements []extraction.Requirement `json:"requirements"`
	// ReaderUsed is the name of the document reader that was selected.
	ReaderUsed string `json:"reader_used"`
	// SentenceCount is the number of sentence units seen before filtering.
	SentenceCount int `json:"sentence_count"`
}

// ExtractRequirements runs the extraction pipeline over the provided document
// and returns the requirement records.
func ExtractRequirements(ctx context.Context, _ *mcp.CallToolRequest, input InputExtractRequirements) (*mcp.CallToolResult, OutputExtractRequirements, error) {
	if input.Content == "" {
		return nil, OutputExtractRequirements{}, fmt.Errorf("content is required")
	}

	filename := input.Filename
	if filename == "" {
		filename = "unknown"
	}

	src := extraction.Source{
		Content:  []byte(input.Content),
		Format:   input.Format,
		Filename: filename,
	}
	reader, err := readers.For(src, readers.Defaults())
	if err != nil {
		return nil, OutputExtractRequirements{}, err
	}
	text, err := reader.Read(ctx, src)
	if err != nil {
		return nil, OutputExtractRequirements{}, fmt.Errorf("reader %q failed: %w", reader.Name(), err)
	}

	policy := extraction.EmitSentences
	if input.MergeAdjacent {
		policy = extraction.EmitMerged
	}
	extractor := extraction.NewExtractor(extraction.DefaultFilterConfig, policy)
	result := extractor.RunWithMeta(extraction.Document{Filename: filename, Content: text})

	return nil, OutputExtractRequirements{
		Requirements:  result.Requirements,
		ReaderUsed:    reader.Name(),
		SentenceCount: result.SentenceCount,
	}, nil
}
