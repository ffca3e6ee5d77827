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

package v1alpha1

import (
	"strings"
)

// Template is the generated manifest describing how to run one application
// under the streaming platform.
//
// The yaml tags define the on-disk field names; field declaration order is
// the emission order, so downstream consumers see stable, human-readable
// documents. Do not reorder fields without updating the output contract.
type Template struct {
	APIVersion string       `json:"apiVersion" yaml:"apiVersion"`
	Kind       string       `json:"kind" yaml:"kind"`
	Metadata   ObjectMeta   `json:"metadata" yaml:"metadata"`
	Spec       TemplateSpec `json:"spec" yaml:"spec"`
}

// ObjectMeta carries the identifying metadata of a Template.
type ObjectMeta struct {
	// Name is derived 1:1 from the source entry's name and doubles as the
	// output file name, so it must be lowercase and filesystem-safe.
	Name      string            `json:"name" yaml:"name"`
	Namespace string            `json:"namespace" yaml:"namespace"`
	Labels    map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// TemplateSpec defines the desired runtime configuration of an application.
type TemplateSpec struct {
	DisplayName string `json:"displayName" yaml:"displayName"`
	Description string `json:"description" yaml:"description"`

	// Category is the canonical category name; it determines the output
	// directory and the capability defaults.
	Category string `json:"category" yaml:"category"`

	Icon      string `json:"icon" yaml:"icon"`
	BaseImage string `json:"baseImage" yaml:"baseImage"`

	DefaultResources ResourceRequirements `json:"defaultResources" yaml:"defaultResources"`

	// Ports always contains exactly one entry.
	Ports []PortSpec `json:"ports" yaml:"ports"`

	// Env starts with the fixed PUID/PGID/TZ triple, followed by any
	// entry-supplied extras in their original order.
	Env []EnvVar `json:"env" yaml:"env"`

	VolumeMounts []VolumeMount `json:"volumeMounts" yaml:"volumeMounts"`

	KasmVNC KasmVNCConfig `json:"kasmvnc" yaml:"kasmvnc"`

	Capabilities []string `json:"capabilities" yaml:"capabilities"`
	Tags         []string `json:"tags" yaml:"tags"`
}

// ResourceRequirements holds the requested and limiting resource quantities.
type ResourceRequirements struct {
	Requests ResourceList `json:"requests" yaml:"requests"`
	Limits   ResourceList `json:"limits" yaml:"limits"`
}

// ResourceList is a memory/CPU quantity pair in Kubernetes quantity notation
// (e.g. "2Gi", "1000m").
type ResourceList struct {
	Memory string `json:"memory" yaml:"memory"`
	CPU    string `json:"cpu" yaml:"cpu"`
}

// PortSpec declares a single exposed container port.
type PortSpec struct {
	Name          string `json:"name" yaml:"name"`
	ContainerPort int    `json:"containerPort" yaml:"containerPort"`
	Protocol      string `json:"protocol" yaml:"protocol"`
}

// EnvVar is a single environment variable record.
type EnvVar struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// VolumeMount declares a named volume mounted into the container.
type VolumeMount struct {
	Name      string `json:"name" yaml:"name"`
	MountPath string `json:"mountPath" yaml:"mountPath"`
}

// KasmVNCConfig is the remote-display block. Port is nil when remote display
// is disabled and serializes as an explicit null.
type KasmVNCConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Port    *int `json:"port" yaml:"port"`
}

// CategorySlug converts a canonical category name into the slug used for
// directory layout and category labels: " & " and spaces become "-", the
// result is lowercased. "Audio & Video" becomes "audio-video".
func CategorySlug(category string) string {
	slug := strings.ToLower(category)
	slug = strings.ReplaceAll(slug, " & ", "-")
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}
