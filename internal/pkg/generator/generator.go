/*
Copyright 2025 The StreamSpace contributors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package generator

import (
	"fmt"

	"go.uber.org/zap"

	kerrors "k8s.io/apimachinery/pkg/util/errors"

	"streamspace.io/template-generator/internal/pkg/catalog"
	"streamspace.io/template-generator/internal/pkg/defaulting"
)

// Generator drives one full generation pass over a catalog.
type Generator struct {
	policy Policy
	writer *Writer
	logger *zap.SugaredLogger
}

// New returns a Generator for the given pipeline policy, writing manifests
// under outputDir.
func New(policy Policy, outputDir string, logger *zap.SugaredLogger) *Generator {
	return &Generator{
		policy: policy,
		writer: NewWriter(outputDir, policy.WriteHeader),
		logger: logger,
	}
}

// Stats accumulates the results of one generation pass.
type Stats struct {
	// Generated counts successfully written templates.
	Generated int

	// Skipped counts skip-listed entries and per-entry failures.
	Skipped int

	// PerCategory counts generated templates by canonical category.
	PerCategory map[string]int
}

// Run converts and persists every entry. Per-entry failures are logged with
// the offending entry's name, counted as skips, and collected into the
// returned aggregate; they never abort the pass. The caller decides whether
// the aggregate is worth more than a diagnostic — a partial run still exits
// successfully.
func (g *Generator) Run(entries []catalog.Entry) (Stats, error) {
	stats := Stats{PerCategory: map[string]int{}}
	var errs []error

	for i := range entries {
		entry := &entries[i]

		if g.policy.UseSkipList && defaulting.ShouldSkip(canonicalName(g.policy, entry.Name)) {
			g.logger.Infow("Skipping entry with special config", "entry", entry.Name)
			stats.Skipped++
			continue
		}

		tmpl, err := convertEntryToTemplate(g.policy, entry)
		if err != nil {
			g.logger.Errorw("Failed to generate template", "entry", entry.Name, "error", err)
			stats.Skipped++
			errs = append(errs, fmt.Errorf("entry %q: %w", entry.Name, err))
			continue
		}

		path, err := g.writer.Write(tmpl)
		if err != nil {
			g.logger.Errorw("Failed to write template", "entry", entry.Name, "error", err)
			stats.Skipped++
			errs = append(errs, fmt.Errorf("entry %q: %w", entry.Name, err))
			continue
		}

		g.logger.Infow("Generated template", "path", path)
		stats.Generated++
		stats.PerCategory[tmpl.Spec.Category]++
	}

	return stats, kerrors.NewAggregate(errs)
}
