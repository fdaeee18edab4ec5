// SPDX-License-Identifier: Apache-2.0

package readers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
)

// JSONReader renders JSON documents back as indented text, so field values
// land on their own lines for the line cleaner.
type JSONReader struct{}

// NewJSONReader creates a new JSONReader.
func NewJSONReader() *JSONReader {
	return &JSONReader{}
}

func (r *JSONReader) Name() string {
	return "json"
}

func (r *JSONReader) CanHandle(source extraction.Source) bool {
	if strings.EqualFold(source.Format, "json") {
		return true
	}
	content := strings.TrimSpace(string(source.Content))
	return strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[")
}

func (r *JSONReader) Read(_ context.Context, source extraction.Source) (string, error) {
	var doc interface{}
	if err := json.Unmarshal(source.Content, &doc); err != nil {
		return "", fmt.Errorf("failed to parse JSON: %w", err)
	}
	rendered, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render JSON: %w", err)
	}
	return string(rendered), nil
}
