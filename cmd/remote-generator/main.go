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

// remote-generator produces Template manifests from the LinuxServer.io
// image API.
package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/pflag"

	"streamspace.io/template-generator/internal/pkg/catalog"
	"streamspace.io/template-generator/internal/pkg/defaulting"
	"streamspace.io/template-generator/internal/pkg/generator"
	sslog "streamspace.io/template-generator/internal/pkg/log"
)

type flags struct {
	category       string
	outputDir      string
	listCategories bool
}

func main() {
	var f flags
	logFlags := sslog.NewDefaultOptions()
	logFlags.AddPFlags(pflag.CommandLine)

	pflag.StringVar(&f.category, "category", "", "Generate only entries in this canonical category (e.g. 'Web Browsers')")
	pflag.StringVar(&f.outputDir, "output-dir", "manifests/templates-generated", "Output directory for generated templates")
	pflag.BoolVar(&f.listCategories, "list-categories", false, "List the canonical categories observed in the fetched data and exit")

	pflag.Parse()

	rawLog := sslog.New(logFlags.Debug, logFlags.Format)
	l := rawLog.Sugar()

	l.Infof("Fetching image catalog from %s", catalog.DefaultAPIURL)

	entries, err := catalog.NewClient().FetchImages(context.Background())
	if err != nil {
		l.Fatalf("Failed to fetch image catalog: %v", err)
	}
	l.Infof("Fetched %d images", len(entries))

	if f.listCategories {
		// Plain stdout so the list can be piped.
		for _, category := range observedCategories(entries) {
			fmt.Println(category)
		}
		return
	}

	if f.category != "" {
		entries = filterByCategory(entries, f.category)
		l.Infof("Filtered to %d images in category %q", len(entries), f.category)
	}

	gen := generator.New(generator.RemotePolicy(), f.outputDir, l.Named("generator"))

	stats, err := gen.Run(entries)
	if err != nil {
		l.Warnf("Run finished with failures: %v", err)
	}

	outputDir, absErr := filepath.Abs(f.outputDir)
	if absErr != nil {
		outputDir = f.outputDir
	}

	l.Infof("Generated %d templates, skipped %d images", stats.Generated, stats.Skipped)
	l.Infof("Output directory: %s", outputDir)
}

// observedCategories returns the sorted, de-duplicated canonical categories
// present in the fetched data.
func observedCategories(entries []catalog.Entry) []string {
	seen := map[string]bool{}
	for i := range entries {
		seen[defaulting.NormalizeCategory(entries[i].Category)] = true
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return categories
}

// filterByCategory keeps entries whose canonical category matches exactly.
func filterByCategory(entries []catalog.Entry, category string) []catalog.Entry {
	filtered := make([]catalog.Entry, 0, len(entries))
	for i := range entries {
		if defaulting.NormalizeCategory(entries[i].Category) == category {
			filtered = append(filtered, entries[i])
		}
	}
	return filtered
}
