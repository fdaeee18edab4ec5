// SPDX-License-Identifier: Apache-2.0

// Package readers decodes supported document formats into the plain text the
// extraction pipeline consumes. PDF and DOCX decoding stay with the upstream
// collaborator that produces Source content; this package only covers formats
// expressible as text.
package readers

import (
	"fmt"

	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
)

// Defaults returns all built-in readers. Order matters: more specific readers
// (html, xml, json) come before generic ones so auto-detection does not
// mis-route, and the plain-text fallback is always last.
func Defaults() []extraction.DocumentReader {
	return []extraction.DocumentReader{
		NewHTMLReader(),
		NewXMLReader(),
		NewJSONReader(),
		NewYAMLReader(),
		NewPlainTextReader(),
	}
}

// For returns the first reader that can handle the given source.
func For(source extraction.Source, available []extraction.DocumentReader) (extraction.DocumentReader, error) {
	for _, r := range available {
		if r.CanHandle(source) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("unsupported document format: no reader found for source %q (format hint: %q)", source.Filename, source.Format)
}
