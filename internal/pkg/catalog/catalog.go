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

// Package catalog loads application catalogs, either from a curated local
// file or from the LinuxServer.io image API.
package catalog

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	streamv1alpha1 "streamspace.io/template-generator/pkg/apis/stream/v1alpha1"
)

// Entry is one source record describing a containerizable application.
// Entries are read once per run and never mutated; one entry produces exactly
// one Template.
type Entry struct {
	// Name is the unique identifier, used for file and image naming.
	Name string `json:"name"`

	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`

	// Category is a free-form or curated category string; it is normalized
	// before use.
	Category string `json:"category,omitempty"`

	// Resources is an explicit request override. Honored by the curated
	// pipeline only.
	Resources *streamv1alpha1.ResourceList `json:"resources,omitempty"`

	// KasmVNC toggles remote-display capability. Defaults to true when
	// absent in the curated pipeline.
	KasmVNC *bool `json:"kasmvnc,omitempty"`

	// Port overrides the container port. Honored by the curated pipeline
	// only.
	Port int `json:"port,omitempty"`

	// Env lists extra environment variables appended after the fixed
	// defaults, unmodified.
	Env []streamv1alpha1.EnvVar `json:"env,omitempty"`
}

// Catalog is the top-level document shape shared by the curated file and the
// remote API response.
type Catalog struct {
	Images []Entry `json:"images"`
}

// LoadFile reads a curated catalog from disk. The file may be authored as
// JSON or YAML. A missing `images` key yields an empty slice rather than an
// error; a missing or unreadable file is fatal to the caller.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	return c.Images, nil
}
