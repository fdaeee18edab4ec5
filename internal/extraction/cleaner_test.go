// SPDX-License-Identifier: Apache-2.0

package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
)

func TestCleanLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "keeps ordinary lines trimmed and ordered",
			raw:  "  The system shall log events.  \nUsers must authenticate.",
			want: []string{"The system shall log events.", "Users must authenticate."},
		},
		{
			name: "drops empty lines",
			raw:  "First line.\n\n   \nSecond line.",
			want: []string{"First line.", "Second line."},
		},
		{
			name: "drops page labels case-insensitively",
			raw:  "Page 12\npage 3\nPAGE 4\nReal content here.",
			want: []string{"Real content here."},
		},
		{
			name: "drops bare page numbers",
			raw:  "42\nThe system shall encrypt data.\n7",
			want: []string{"The system shall encrypt data."},
		},
		{
			name: "keeps lines that merely contain numbers",
			raw:  "Section 42 applies to PHI.",
			want: []string{"Section 42 applies to PHI."},
		},
		{
			name: "empty input yields no lines",
			raw:  "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extraction.CleanLines(tt.raw))
		})
	}
}

func TestCleanLines_PreservesCaseAndPunctuation(t *testing.T) {
	got := extraction.CleanLines("The SYSTEM shall (always) Encrypt-PHI.")
	assert.Equal(t, []string{"The SYSTEM shall (always) Encrypt-PHI."}, got)
}
