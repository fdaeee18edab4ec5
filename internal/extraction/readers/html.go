// SPDX-License-Identifier: Apache-2.0

package readers

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
)

// HTMLReader extracts visible text from HTML documents, one trimmed text node
// per line. Script and style content is skipped.
type HTMLReader struct{}

// NewHTMLReader creates a new HTMLReader.
func NewHTMLReader() *HTMLReader {
	return &HTMLReader{}
}

func (r *HTMLReader) Name() string {
	return "html"
}

// CanHandle returns true for sources with an "html"/"htm" format hint or whose
// content carries recognizable HTML markup.
func (r *HTMLReader) CanHandle(source extraction.Source) bool {
	switch strings.ToLower(source.Format) {
	case "html", "htm":
		return true
	}
	content := strings.ToLower(strings.TrimSpace(string(source.Content)))
	return strings.HasPrefix(content, "<!doctype html") ||
		strings.Contains(content, "<html") ||
		strings.Contains(content, "<body")
}

func (r *HTMLReader) Read(_ context.Context, source extraction.Source) (string, error) {
	root, err := html.Parse(strings.NewReader(string(source.Content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return strings.Join(lines, "\n"), nil
}
