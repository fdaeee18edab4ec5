// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction"
	"github.com/reqtraceproj/reqtrace-mcp/internal/extraction/readers"
)

// supportedExtensions maps file extensions the batch walker picks up to the
// reader format hint passed along with the content.
var supportedExtensions = map[string]string{
	".html": "html",
	".htm":  "html",
	".xml":  "xml",
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".txt":  "plaintext",
	".md":   "plaintext",
}

var (
	batchOut          string
	batchFilterConfig string
	batchMerge        bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <data-folder>",
	Short: "Extract requirements from every supported document in a folder",
	Long: `Recursively walk a data folder, decode every supported document
(html, xml, json, yaml, plaintext) and run requirement extraction over the
whole set as one batch: requirement codes are sequential across all files and
duplicate statements across files are dropped. Results are written as a JSON
array of requirement records.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := extraction.DefaultFilterConfig
		if batchFilterConfig != "" {
			var err error
			cfg, err = extraction.LoadFilterConfig(batchFilterConfig)
			if err != nil {
				return err
			}
		}
		policy := extraction.EmitSentences
		if batchMerge {
			policy = extraction.EmitMerged
		}

		docs, err := collectDocuments(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		logger.Info("collected documents", zap.Int("count", len(docs)), zap.String("folder", args[0]))

		result := extraction.NewExtractor(cfg, policy).RunWithMeta(docs...)
		logger.Info("extraction finished",
			zap.Int("sentences", result.SentenceCount),
			zap.Int("requirements", len(result.Requirements)))

		if err := writeJSON(batchOut, result.Requirements); err != nil {
			return err
		}
		logger.Info("wrote requirements", zap.String("path", batchOut))
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "requirements.json", "output path for the requirement records")
	batchCmd.Flags().StringVar(&batchFilterConfig, "filter-config", "", "YAML overlay for the requirement filter heuristics")
	batchCmd.Flags().BoolVar(&batchMerge, "merge", false, "merge runs of adjacent requirement-like sentences into multi-clause records")
}

// collectDocuments walks the folder and decodes every supported file. A file
// that fails to decode is logged and skipped; it does not abort the batch.
func collectDocuments(ctx context.Context, folder string) ([]extraction.Document, error) {
	var docs []extraction.Document
	available := readers.Defaults()

	walkErr := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		format, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
			return nil
		}
		src := extraction.Source{Content: content, Format: format, Filename: filepath.Base(path)}
		reader, err := readers.For(src, available)
		if err != nil {
			logger.Warn("skipping file", zap.String("path", path), zap.Error(err))
			return nil
		}
		text, err := reader.Read(ctx, src)
		if err != nil {
			logger.Warn("skipping undecodable file", zap.String("path", path),
				zap.String("reader", reader.Name()), zap.Error(err))
			return nil
		}
		docs = append(docs, extraction.Document{Filename: filepath.Base(path), Content: text})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %q: %w", folder, walkErr)
	}
	return docs, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
