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

// ErrorView is a minimal, serializable representation of an error and its
// cause chain.
//
// This is *not* the concrete error type used internally — it is the shape
// that we are comfortable exposing to a display or logging collaborator.
// Keeping it here (in apis) allows HTTP-oriented and gRPC-oriented adapters
// to share the same struct.
type ErrorView struct {
	// Message is the top-level human-readable description. Always present.
	Message string `json:"message"`

	// Context is the operation breadcrumb, empty when none was recorded.
	Context string `json:"context,omitempty"`

	// StatusCode is the numeric classification; 0 means "not set" in this
	// view shape (the concrete error type distinguishes absence explicitly,
	// the view trades that for a flat wire-friendly form).
	StatusCode int `json:"status_code,omitempty"`

	// Status is the human-readable status label, empty when none was set.
	Status string `json:"status,omitempty"`

	// Location is the "file:line" provenance marker, empty when capture
	// did not happen.
	Location string `json:"location,omitempty"`

	// Cause is the view of the wrapped error, nil at the end of the chain.
	Cause *ErrorView `json:"cause,omitempty"`
}

// Map returns the view as a plain nested map, suitable for structpb and
// other generic encoders. Absent fields are omitted, matching the JSON tags.
func (v ErrorView) Map() map[string]any {
	m := map[string]any{"message": v.Message}
	if v.Context != "" {
		m["context"] = v.Context
	}
	if v.StatusCode != 0 {
		m["status_code"] = v.StatusCode
	}
	if v.Status != "" {
		m["status"] = v.Status
	}
	if v.Location != "" {
		m["location"] = v.Location
	}
	if v.Cause != nil {
		m["cause"] = v.Cause.Map()
	}
	return m
}
