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
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	streamv1alpha1 "streamspace.io/template-generator/pkg/apis/stream/v1alpha1"
)

// Writer persists Template manifests as YAML files grouped into one
// directory per category slug. Existing files are overwritten without
// warning; re-running the generator fully regenerates the output tree.
type Writer struct {
	outputDir string
	header    bool
}

// NewWriter returns a Writer rooted at outputDir. When header is true each
// file is prefixed with descriptive comment lines and a document separator.
func NewWriter(outputDir string, header bool) *Writer {
	return &Writer{
		outputDir: outputDir,
		header:    header,
	}
}

// Write serializes the template to <outputDir>/<category-slug>/<name>.yaml
// and returns the written path. The document is marshaled fully in memory
// first, so a synthesis or encoding failure never leaves a partial file
// behind.
func (w *Writer) Write(tmpl *streamv1alpha1.Template) (string, error) {
	var buf bytes.Buffer

	if w.header {
		fmt.Fprintf(&buf, "# %s - %s\n", tmpl.Spec.DisplayName, tmpl.Spec.Description)
		fmt.Fprintf(&buf, "# Category: %s\n", tmpl.Spec.Category)
		fmt.Fprintf(&buf, "# Base Image: %s\n", tmpl.Spec.BaseImage)
		buf.WriteString("---\n")
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tmpl); err != nil {
		return "", fmt.Errorf("failed to encode template: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode template: %w", err)
	}

	dir := filepath.Join(w.outputDir, streamv1alpha1.CategorySlug(tmpl.Spec.Category))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create category directory: %w", err)
	}

	path := filepath.Join(dir, tmpl.Metadata.Name+".yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write template file: %w", err)
	}

	return path, nil
}
