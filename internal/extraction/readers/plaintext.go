// SPDX-License-Identifier: Apache-2.0

package readers

import (
	"context"

	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
)

// PlainTextReader passes content through untouched. It accepts anything, so it
// must be registered last.
type PlainTextReader struct{}

// NewPlainTextReader creates a new PlainTextReader.
func NewPlainTextReader() *PlainTextReader {
	return &PlainTextReader{}
}

func (r *PlainTextReader) Name() string {
	return "plaintext"
}

func (r *PlainTextReader) CanHandle(extraction.Source) bool {
	return true
}

func (r *PlainTextReader) Read(_ context.Context, source extraction.Source) (string, error) {
	return string(source.Content), nil
}
