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

// catalog-generator produces Template manifests from the curated application
// catalog file.
package main

import (
	"path/filepath"
	"sort"

	"github.com/spf13/pflag"

	"streamspace.io/template-generator/internal/pkg/catalog"
	"streamspace.io/template-generator/internal/pkg/generator"
	sslog "streamspace.io/template-generator/internal/pkg/log"
)

type flags struct {
	catalogPath string
	outputDir   string
}

func main() {
	var f flags
	logFlags := sslog.NewDefaultOptions()
	logFlags.AddPFlags(pflag.CommandLine)

	pflag.StringVar(&f.catalogPath, "catalog", "scripts/popular-apps.json", "Path to the curated catalog JSON file")
	pflag.StringVar(&f.outputDir, "output-dir", "manifests/templates-generated", "Output directory for generated templates")

	pflag.Parse()

	rawLog := sslog.New(logFlags.Debug, logFlags.Format)
	l := rawLog.Sugar()

	entries, err := catalog.LoadFile(f.catalogPath)
	if err != nil {
		l.Fatalf("Failed to load catalog: %v", err)
	}
	l.Infof("Loaded %d applications from catalog", len(entries))

	gen := generator.New(generator.CatalogPolicy(), f.outputDir, l.Named("generator"))

	stats, err := gen.Run(entries)
	if err != nil {
		// Per-entry failures were already logged with their entry names;
		// a partial run still completes normally.
		l.Warnf("Run finished with failures: %v", err)
	}

	outputDir, absErr := filepath.Abs(f.outputDir)
	if absErr != nil {
		outputDir = f.outputDir
	}

	l.Infof("Generated %d templates (%d failed or skipped)", stats.Generated, stats.Skipped)
	l.Infof("Output directory: %s", outputDir)

	categories := make([]string, 0, len(stats.PerCategory))
	for category := range stats.PerCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		l.Infof("  %s: %d templates", category, stats.PerCategory[category])
	}
}
