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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"streamspace.io/template-generator/internal/pkg/catalog"
	streamv1alpha1 "streamspace.io/template-generator/pkg/apis/stream/v1alpha1"
)

func firefoxTemplate(t *testing.T) *streamv1alpha1.Template {
	t.Helper()

	tmpl, err := convertEntryToTemplate(CatalogPolicy(), newCuratedEntry("firefox"))
	require.NoError(t, err)
	return tmpl
}

func TestWriterLayout(t *testing.T) {
	t.Parallel()

	outputDir := t.TempDir()
	w := NewWriter(outputDir, true)

	path, err := w.Write(firefoxTemplate(t))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outputDir, "web-browsers", "firefox.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	lines := strings.Split(content, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "# Firefox - Web browser", lines[0])
	assert.Equal(t, "# Category: Web Browsers", lines[1])
	assert.Equal(t, "# Base Image: lscr.io/linuxserver/firefox:latest", lines[2])
	assert.Equal(t, "---", lines[3])

	assert.Contains(t, content, "baseImage: lscr.io/linuxserver/firefox:latest")
	assert.Contains(t, content, "containerPort: 3000")
}

func TestWriterRoundTrip(t *testing.T) {
	t.Parallel()

	tmpl := firefoxTemplate(t)

	w := NewWriter(t.TempDir(), true)
	path, err := w.Write(tmpl)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Re-parsing the document (yaml skips the comment header) must yield a
	// structurally equal template.
	var parsed streamv1alpha1.Template
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, tmpl, &parsed)
}

func TestWriterNoHeader(t *testing.T) {
	t.Parallel()

	entry := newCuratedEntry("firefox")
	entry.Resources = nil
	tmpl, err := convertEntryToTemplate(RemotePolicy(), entry)
	require.NoError(t, err)

	w := NewWriter(t.TempDir(), false)
	path, err := w.Write(tmpl)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "apiVersion: stream.streamspace.io/v1alpha1\n"))
	assert.NotContains(t, string(data), "---")
}

func TestWriterFieldOrder(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir(), false)
	path, err := w.Write(firefoxTemplate(t))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Spec fields must come out in declaration order, not sorted.
	content := string(data)
	order := []string{
		"displayName:",
		"description:",
		"category:",
		"icon:",
		"baseImage:",
		"defaultResources:",
		"ports:",
		"env:",
		"volumeMounts:",
		"kasmvnc:",
		"capabilities:",
		"tags:",
	}

	last := -1
	for _, field := range order {
		idx := strings.Index(content, "\n  "+field)
		require.NotEqual(t, -1, idx, "field %s missing", field)
		assert.Greater(t, idx, last, "field %s out of order", field)
		last = idx
	}
}

func TestWriterDisabledRemoteDisplaySerializesNullPort(t *testing.T) {
	t.Parallel()

	entry := &catalog.Entry{Name: "linuxserver/nginx", Description: "A simple webserver", Category: "Network & DNS"}
	tmpl, err := convertEntryToTemplate(RemotePolicy(), entry)
	require.NoError(t, err)

	w := NewWriter(t.TempDir(), false)
	path, err := w.Write(tmpl)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "port: null")
}

func TestWriterOverwritesExistingFile(t *testing.T) {
	t.Parallel()

	w := NewWriter(t.TempDir(), true)

	tmpl := firefoxTemplate(t)
	_, err := w.Write(tmpl)
	require.NoError(t, err)

	tmpl.Spec.Description = "changed"
	path, err := w.Write(tmpl)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "description: changed")
}
