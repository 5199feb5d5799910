/*
   Copyright 2025 The DIRPX Authors

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

package apis

// ErrorDescriptor is a flat, single-level description of an error.
//
// Unlike ErrorView it does not nest the cause chain: the chain is collapsed
// into Rendered. This shape is what structured-logging collaborators want —
// one record, stable fields, no recursion.
type ErrorDescriptor struct {
	// Message is the top-level human-readable description.
	Message string `json:"message"`

	// Context is the operation breadcrumb, empty when none was recorded.
	Context string `json:"context,omitempty"`

	// StatusCode is the numeric classification; 0 means "not set" in this
	// flat shape.
	StatusCode int `json:"status_code,omitempty"`

	// Status is the human-readable status label, empty when none was set.
	Status string `json:"status,omitempty"`

	// Location is the "file:line" marker of the build site, empty when
	// capture did not happen.
	Location string `json:"location,omitempty"`

	// Rendered is the full deterministic rendering of the whole cause
	// chain, as produced by the error's Render method.
	Rendered string `json:"rendered,omitempty"`
}
