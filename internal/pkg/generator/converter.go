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
	"errors"
	"fmt"
	"strings"
	"unicode"

	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/util/validation"

	"streamspace.io/template-generator/internal/pkg/catalog"
	"streamspace.io/template-generator/internal/pkg/defaulting"
	streamv1alpha1 "streamspace.io/template-generator/pkg/apis/stream/v1alpha1"
)

const (
	// registryNamespacePrefix is stripped from canonicalized entry names in
	// the remote pipeline ("linuxserver/firefox" -> "firefox").
	registryNamespacePrefix = "linuxserver-"
	rawRegistryPrefix       = "linuxserver/"

	maxDescriptionLen = 500
)

// Capability names attached to every template; Audio is added for
// audio/video and gaming categories in the curated pipeline.
const (
	CapabilityNetwork   = "Network"
	CapabilityClipboard = "Clipboard"
	CapabilityAudio     = "Audio"
)

const (
	categoryAudioVideo = "Audio & Video"
	categoryGaming     = "Gaming"
)

// convertEntryToTemplate converts one catalog entry into a Template under
// the given pipeline policy. It never panics on missing optional fields;
// missing required fields and invalid derived values are returned as errors
// so the caller can record the entry as failed and continue.
func convertEntryToTemplate(policy Policy, entry *catalog.Entry) (*streamv1alpha1.Template, error) {
	name := canonicalName(policy, entry.Name)
	if name == "" {
		return nil, errors.New("entry has no name")
	}
	if errs := validation.IsDNS1123Subdomain(name); len(errs) > 0 {
		return nil, fmt.Errorf("derived name %q is not filesystem-safe: %s", name, strings.Join(errs, "; "))
	}

	category := defaulting.NormalizeCategory(entry.Category)

	displayName := entry.DisplayName
	if policy.DeriveDisplayName {
		displayName = titleCase(strings.TrimPrefix(entry.Name, rawRegistryPrefix))
	} else if displayName == "" {
		return nil, errors.New("entry has no displayName")
	}

	description, err := describe(policy, entry, name, displayName)
	if err != nil {
		return nil, err
	}

	enabled := remoteDisplayEnabled(policy, entry, description, category)

	port := streamv1alpha1.DefaultHTTPPort
	portName := streamv1alpha1.PortNameHTTP
	if enabled {
		port = streamv1alpha1.DefaultVNCPort
		portName = streamv1alpha1.PortNameVNC
	}
	if policy.HonorEntryPort && entry.Port > 0 {
		port = entry.Port
	}

	requests, err := requestsFor(policy, entry, category, name)
	if err != nil {
		return nil, err
	}

	kasmvnc := streamv1alpha1.KasmVNCConfig{Enabled: enabled}
	if enabled {
		p := port
		kasmvnc.Port = &p
	}

	tmpl := &streamv1alpha1.Template{
		APIVersion: streamv1alpha1.TemplateAPIVersion,
		Kind:       streamv1alpha1.TemplateKindName,
		Metadata: streamv1alpha1.ObjectMeta{
			Name:      name,
			Namespace: streamv1alpha1.TemplateNamespace,
		},
		Spec: streamv1alpha1.TemplateSpec{
			DisplayName: displayName,
			Description: description,
			Category:    category,
			Icon:        fmt.Sprintf(streamv1alpha1.IconURLFormat, name),
			BaseImage:   fmt.Sprintf(streamv1alpha1.BaseImageFormat, name),
			DefaultResources: streamv1alpha1.ResourceRequirements{
				Requests: requests,
				Limits:   defaulting.LimitsFor(requests),
			},
			Ports: []streamv1alpha1.PortSpec{
				{Name: portName, ContainerPort: port, Protocol: "TCP"},
			},
			Env:          environment(policy, entry),
			VolumeMounts: []streamv1alpha1.VolumeMount{{Name: "user-home", MountPath: "/config"}},
			KasmVNC:      kasmvnc,
			Capabilities: capabilities(policy, category),
			Tags:         []string{name, tagSlug(policy, category)},
		},
	}

	if policy.AttachLabels {
		tmpl.Metadata.Labels = map[string]string{
			streamv1alpha1.LabelAppName:      name,
			streamv1alpha1.LabelAppComponent: streamv1alpha1.ComponentTemplate,
			streamv1alpha1.LabelCategory:     streamv1alpha1.CategorySlug(category),
		}
	}

	return tmpl, nil
}

// canonicalName derives the template name from the source entry name. The
// remote pipeline canonicalizes registry paths; the curated pipeline uses
// the name verbatim.
func canonicalName(policy Policy, raw string) string {
	if !policy.StripNamePrefix {
		return raw
	}
	name := strings.ToLower(raw)
	name = strings.ReplaceAll(name, "/", "-")
	return strings.TrimPrefix(name, registryNamespacePrefix)
}

func describe(policy Policy, entry *catalog.Entry, name, displayName string) (string, error) {
	description := entry.Description

	if policy.UseSpecialConfigs {
		if cfg, ok := defaulting.SpecialConfigFor(name); ok && cfg.Description != "" {
			description = cfg.Description
		}
	}

	if description == "" {
		if !policy.DeriveDisplayName {
			return "", errors.New("entry has no description")
		}
		description = displayName + " containerized application"
	}

	if policy.TruncateDescription {
		description = truncateRunes(description, maxDescriptionLen)
	}

	return description, nil
}

// truncateRunes caps s at limit characters, never splitting a multibyte
// rune.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// remoteDisplayEnabled decides whether the application is served through the
// browser-based remote desktop. The curated pipeline trusts the entry flag
// (default true); the remote pipeline infers it from the description text
// and the desktop-like category set.
func remoteDisplayEnabled(policy Policy, entry *catalog.Entry, description, category string) bool {
	if !policy.InferKasmVNC {
		if entry.KasmVNC != nil {
			return *entry.KasmVNC
		}
		return true
	}

	lower := strings.ToLower(description)
	return strings.Contains(lower, "desktop") ||
		strings.Contains(lower, "gui") ||
		defaulting.IsDesktopCategory(category)
}

func requestsFor(policy Policy, entry *catalog.Entry, category, name string) (streamv1alpha1.ResourceList, error) {
	if policy.HonorEntryResources && entry.Resources != nil {
		requests := *entry.Resources
		if err := validateQuantities(requests); err != nil {
			return streamv1alpha1.ResourceList{}, err
		}
		return requests, nil
	}
	return defaulting.RequestsFor(category, name), nil
}

func validateQuantities(requests streamv1alpha1.ResourceList) error {
	if _, err := resource.ParseQuantity(requests.Memory); err != nil {
		return fmt.Errorf("invalid memory quantity %q: %w", requests.Memory, err)
	}
	if _, err := resource.ParseQuantity(requests.CPU); err != nil {
		return fmt.Errorf("invalid cpu quantity %q: %w", requests.CPU, err)
	}
	return nil
}

func environment(policy Policy, entry *catalog.Entry) []streamv1alpha1.EnvVar {
	env := []streamv1alpha1.EnvVar{
		{Name: "PUID", Value: "1000"},
		{Name: "PGID", Value: "1000"},
		{Name: "TZ", Value: "America/New_York"},
	}
	if policy.AppendEntryEnv {
		env = append(env, entry.Env...)
	}
	return env
}

func capabilities(policy Policy, category string) []string {
	caps := []string{CapabilityNetwork, CapabilityClipboard}
	if policy.AudioCapability && (category == categoryAudioVideo || category == categoryGaming) {
		caps = append(caps, CapabilityAudio)
	}
	return caps
}

func tagSlug(policy Policy, category string) string {
	if policy.FullTagSlug {
		return streamv1alpha1.CategorySlug(category)
	}
	return strings.ToLower(category)
}

// titleCase uppercases the first letter of each word and lowercases the
// rest, matching the display-name convention of the upstream image list.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
