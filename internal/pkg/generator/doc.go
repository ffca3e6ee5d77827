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

// Package generator turns catalog entries into Template manifests and
// persists them as YAML files under a category-based directory layout.
//
// The curated-catalog and remote-API pipelines share one conversion path,
// parameterized by a Policy that captures their intentionally different
// derivation rules (name prefix stripping, description truncation,
// entry-level overrides, tag formatting). A Generator drives one full pass
// over a catalog: per-entry failures are logged and counted but never abort
// the run.
package generator
