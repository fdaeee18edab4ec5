// SPDX-License-Identifier: Apache-2.0

package readers

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
)

// XMLReader flattens XML documents into "element: text" lines, one per
// non-empty character-data node.
type XMLReader struct{}

// NewXMLReader creates a new XMLReader.
func NewXMLReader() *XMLReader {
	return &XMLReader{}
}

func (r *XMLReader) Name() string {
	return "xml"
}

func (r *XMLReader) CanHandle(source extraction.Source) bool {
	if strings.EqualFold(source.Format, "xml") {
		return true
	}
	content := strings.TrimSpace(string(source.Content))
	return strings.HasPrefix(content, "<?xml") ||
		(strings.HasPrefix(content, "<") && strings.Contains(content, "</"))
}

func (r *XMLReader) Read(_ context.Context, source extraction.Source) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(string(source.Content)))

	var lines []string
	var element string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			element = t.Name.Local
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			if element != "" {
				lines = append(lines, element+": "+text)
			} else {
				lines = append(lines, text)
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}
