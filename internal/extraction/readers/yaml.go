// SPDX-License-Identifier: Apache-2.0

package readers

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
)

// YAMLReader round-trips YAML documents through the parser, yielding
// normalized "key: value" text lines.
type YAMLReader struct{}

// NewYAMLReader creates a new YAMLReader.
func NewYAMLReader() *YAMLReader {
	return &YAMLReader{}
}

func (r *YAMLReader) Name() string {
	return "yaml"
}

func (r *YAMLReader) CanHandle(source extraction.Source) bool {
	switch strings.ToLower(source.Format) {
	case "yaml", "yml":
		return true
	}
	content := strings.TrimSpace(string(source.Content))
	if len(content) == 0 || strings.HasPrefix(content, "#") || strings.HasPrefix(content, "<") {
		return false
	}
	// Plain YAML: key: value on the first line.
	return strings.Contains(strings.SplitN(content, "\n", 2)[0], ":")
}

func (r *YAMLReader) Read(_ context.Context, source extraction.Source) (string, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(source.Content, &doc); err != nil {
		return "", fmt.Errorf("failed to parse YAML: %w", err)
	}
	rendered, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render YAML: %w", err)
	}
	return string(rendered), nil
}
