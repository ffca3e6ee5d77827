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

// Package defaulting holds the static lookup tables the generators draw on:
// category normalization, per-category resource sizing, and per-application
// special cases. All tables are immutable process-wide data.
package defaulting

// CategoryUncategorized is the canonical category for entries without one.
const CategoryUncategorized = "Uncategorized"

// categoryMap maps raw upstream category names to canonical platform
// categories. Matching is exact and case-sensitive; several raw categories
// collapse into the same canonical one.
var categoryMap = map[string]string{
	"Network & DNS":             "Networking",
	"Media Servers & Music":     "Media",
	"Chat & Social":             "Communication",
	"Monitoring":                "Monitoring",
	"Audio Processing":          "Audio & Video",
	"Family":                    "Lifestyle",
	"3D Printing":               "Design & Graphics",
	"Media Management":          "Media",
	"Music":                     "Media",
	"Finance":                   "Productivity",
	"3D Modeling":               "Design & Graphics",
	"Science":                   "Science & Education",
	"Content Management":        "Productivity",
	"Web Browser":               "Web Browsers",
	"Books":                     "Productivity",
	"Documents":                 "Productivity",
	"Web Tools & Automation":    "Automation",
	"Programming":               "Development",
	"FTP":                       "File Management",
	"Downloaders":               "File Management",
	"Storage & Monitoring":      "System Utilities",
	"Games":                     "Gaming",
	"Media Requesters":          "Media",
	"Administration & Storage":  "System Utilities",
	"Machine Learning":          "AI & ML",
	"RSS & Social":              "Communication",
	"Remote Desktop & Security": "Remote Access",
	"Remote Desktop & Business": "Remote Access",
	"Home Automation":           "Automation",
	"Media Tools":               "Audio & Video",
	"Image Editor":              "Design & Graphics",
	"Photos":                    "Design & Graphics",
	"Password Manager":          "Security",
	"Video Editor":              "Audio & Video",
	"Recipes":                   "Lifestyle",
	"Administration & Security": "Security",
	"IRC":                       "Communication",
	"Databases":                 "Development",
}

// desktopCategories are the canonical categories whose applications are
// assumed to ship a desktop UI streamed over KasmVNC.
var desktopCategories = map[string]bool{
	"Web Browsers":         true,
	"Design & Graphics":    true,
	"Gaming":               true,
	"Productivity":         true,
	"Desktop Environments": true,
}

// NormalizeCategory maps a raw category string to its canonical category.
// Unknown categories pass through unchanged; an empty category becomes
// CategoryUncategorized.
func NormalizeCategory(raw string) string {
	if raw == "" {
		return CategoryUncategorized
	}
	if canonical, ok := categoryMap[raw]; ok {
		return canonical
	}
	return raw
}

// IsDesktopCategory reports whether a canonical category is in the fixed
// desktop-like set.
func IsDesktopCategory(category string) bool {
	return desktopCategories[category]
}
