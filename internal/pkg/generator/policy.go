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

// Policy captures the derivation rules that differ between the two
// generation pipelines. The curated and remote pipelines produce
// intentionally different output for the same input; changing a flag here
// changes the observable manifests, so treat these as part of the output
// contract.
type Policy struct {
	// Name identifies the pipeline in logs.
	Name string

	// StripNamePrefix lowercases the entry name, replaces "/" with "-" and
	// strips a leading registry-namespace prefix.
	StripNamePrefix bool

	// DeriveDisplayName title-cases the display name from the entry name
	// instead of requiring an explicit displayName field, and substitutes a
	// generated description when the entry has none.
	DeriveDisplayName bool

	// UseSpecialConfigs consults the per-application special-case table for
	// description overrides.
	UseSpecialConfigs bool

	// UseSkipList drops entries whose canonical name is skip-listed.
	UseSkipList bool

	// TruncateDescription caps the description at 500 characters.
	TruncateDescription bool

	// InferKasmVNC enables remote display heuristically from the description
	// text and the category, instead of reading the entry's kasmvnc flag.
	InferKasmVNC bool

	// HonorEntryPort lets an explicit entry port override the default.
	HonorEntryPort bool

	// HonorEntryResources lets explicit entry resources override the
	// category-derived sizing.
	HonorEntryResources bool

	// AppendEntryEnv appends entry-supplied environment variables after the
	// fixed defaults.
	AppendEntryEnv bool

	// AudioCapability adds the Audio capability for audio/video and gaming
	// categories.
	AudioCapability bool

	// AttachLabels adds the app-name/component/category labels to the
	// template metadata.
	AttachLabels bool

	// FullTagSlug tags with the full category slug; otherwise the tag is the
	// bare lowercased category string.
	FullTagSlug bool

	// WriteHeader prefixes the output file with descriptive comment lines
	// and a document separator.
	WriteHeader bool
}

// CatalogPolicy is the curated-catalog pipeline: entry-level overrides are
// honored and output files carry a comment header.
func CatalogPolicy() Policy {
	return Policy{
		Name:                "catalog",
		HonorEntryPort:      true,
		HonorEntryResources: true,
		AppendEntryEnv:      true,
		AudioCapability:     true,
		AttachLabels:        true,
		FullTagSlug:         true,
		WriteHeader:         true,
	}
}

// RemotePolicy is the remote-API pipeline: names are canonicalized from
// registry paths, display metadata is derived, and remote display is
// inferred heuristically.
func RemotePolicy() Policy {
	return Policy{
		Name:                "remote",
		StripNamePrefix:     true,
		DeriveDisplayName:   true,
		UseSpecialConfigs:   true,
		UseSkipList:         true,
		TruncateDescription: true,
		InferKasmVNC:        true,
	}
}
