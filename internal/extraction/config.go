// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadFilterConfig reads a YAML overlay for the filter heuristics. Fields left
// unset in the file keep their DefaultFilterConfig value, so a tuning file only
// needs to name what it changes.
func LoadFilterConfig(path string) (FilterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FilterConfig{}, fmt.Errorf("read filter config: %w", err)
	}
	cfg := DefaultFilterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FilterConfig{}, fmt.Errorf("parse filter config %q: %w", path, err)
	}
	if cfg.MinLength < 0 || cfg.MaxLength < cfg.MinLength {
		return FilterConfig{}, fmt.Errorf("filter config %q: invalid length bounds [%d, %d]", path, cfg.MinLength, cfg.MaxLength)
	}
	if len(cfg.VerbWords) == 0 {
		return FilterConfig{}, fmt.Errorf("filter config %q: verb_words must not be empty", path)
	}
	return cfg, nil
}
