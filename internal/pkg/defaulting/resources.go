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

package defaulting

import (
	"strconv"
	"strings"

	streamv1alpha1 "streamspace.io/template-generator/pkg/apis/stream/v1alpha1"
)

// resourceDefaults sizes resource requests by canonical category.
var resourceDefaults = map[string]streamv1alpha1.ResourceList{
	"Web Browsers":      {Memory: "2Gi", CPU: "1000m"},
	"Development":       {Memory: "4Gi", CPU: "2000m"},
	"Design & Graphics": {Memory: "4Gi", CPU: "2000m"},
	"Audio & Video":     {Memory: "3Gi", CPU: "1500m"},
	"Gaming":            {Memory: "4Gi", CPU: "2000m"},
	"Productivity":      {Memory: "3Gi", CPU: "1500m"},
	"Media":             {Memory: "2Gi", CPU: "1000m"},
}

// globalDefaultResources applies when a category has no entry in
// resourceDefaults.
var globalDefaultResources = streamv1alpha1.ResourceList{Memory: "2Gi", CPU: "1000m"}

// SpecialConfig is a per-application exception to category-derived defaults,
// keyed by the canonical application name.
type SpecialConfig struct {
	// Description replaces the upstream description when non-empty.
	Description string

	// Resources replaces the category-derived request sizing when set.
	Resources *streamv1alpha1.ResourceList

	// Skip excludes the application from generation entirely.
	Skip bool
}

var specialConfigs = map[string]SpecialConfig{
	"webtop": {
		Description: "Full Linux desktop environment accessible via web browser. Available in multiple distributions and desktop environments.",
		Resources:   &streamv1alpha1.ResourceList{Memory: "4Gi", CPU: "2000m"},
	},
	"kasm": {
		Description: "Kasm Workspaces platform for streaming containerized apps and desktops to the browser.",
		// The platform replaces Kasm itself; generating a template for it
		// would be circular.
		Skip: true,
	},
}

// SpecialConfigFor looks up the special-case table by canonical name.
func SpecialConfigFor(name string) (SpecialConfig, bool) {
	cfg, ok := specialConfigs[name]
	return cfg, ok
}

// ShouldSkip reports whether the named application is skip-listed.
func ShouldSkip(name string) bool {
	return specialConfigs[name].Skip
}

// RequestsFor returns the default resource requests for an application:
// special-case override first, then category sizing, then the global default.
func RequestsFor(category, name string) streamv1alpha1.ResourceList {
	if cfg, ok := specialConfigs[name]; ok && cfg.Resources != nil {
		return *cfg.Resources
	}
	if requests, ok := resourceDefaults[category]; ok {
		return requests
	}
	return globalDefaultResources
}

// LimitsFor derives resource limits from requests: the memory limit equals
// the request, and a milli-suffixed CPU request is doubled. CPU requests in
// any other format pass through unchanged.
func LimitsFor(requests streamv1alpha1.ResourceList) streamv1alpha1.ResourceList {
	return streamv1alpha1.ResourceList{
		Memory: requests.Memory,
		CPU:    doubleMilliCPU(requests.CPU),
	}
}

func doubleMilliCPU(cpu string) string {
	milli, ok := strings.CutSuffix(cpu, "m")
	if !ok {
		return cpu
	}
	n, err := strconv.Atoi(milli)
	if err != nil {
		return cpu
	}
	return strconv.Itoa(n*2) + "m"
}
