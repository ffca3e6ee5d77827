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

const (
	// TemplateAPIVersion is the apiVersion written into every generated Template.
	TemplateAPIVersion = "stream.streamspace.io/v1alpha1"

	// TemplateKindName is the kind name of the Template resource.
	TemplateKindName = "Template"

	// TemplateNamespace is the namespace all generated Templates belong to.
	TemplateNamespace = "streamspace"
)

const (
	// LabelAppName is the standard Kubernetes app-name label.
	LabelAppName = "app.kubernetes.io/name"

	// LabelAppComponent is the standard Kubernetes component label.
	LabelAppComponent = "app.kubernetes.io/component"

	// LabelCategory carries the category slug of a generated Template.
	LabelCategory = "streamspace.io/category"

	// ComponentTemplate is the component label value for generated Templates.
	ComponentTemplate = "template"
)

const (
	// BaseImageFormat is the registry path every template image resolves to,
	// keyed by the canonical application name.
	BaseImageFormat = "lscr.io/linuxserver/%s:latest"

	// IconURLFormat is the conventional per-app logo location, keyed by the
	// canonical application name.
	IconURLFormat = "https://raw.githubusercontent.com/linuxserver/docker-templates/master/linuxserver.io/img/%s-logo.png"
)

const (
	// PortNameVNC and DefaultVNCPort apply when remote display is enabled.
	PortNameVNC    = "vnc"
	DefaultVNCPort = 3000

	// PortNameHTTP and DefaultHTTPPort apply when remote display is disabled.
	PortNameHTTP    = "http"
	DefaultHTTPPort = 8080
)
