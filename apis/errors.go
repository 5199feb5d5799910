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

import "dirpx.dev/toolkit/errorsx"

// StatusedError represents an error that carries an optional numeric status
// classification and an optional human-readable status label.
//
// Both getters report absence explicitly via the second return value.
// Adapters MUST NOT substitute defaults for absent fields themselves; the
// fallback policy belongs to the boundary that produces output (see httpx).
type StatusedError interface {
	error

	// StatusCode returns the numeric status and whether one was set.
	// The value is domain-agnostic; adapters decide what range it lives in.
	StatusCode() (int, bool)

	// Status returns the status label and whether one was set. It is
	// independent of StatusCode — no pairing is guaranteed.
	Status() (string, bool)
}

// ContextualError represents an error that records the operation that was
// being attempted when the failure occurred.
type ContextualError interface {
	error

	// Context returns the operation breadcrumb and whether one was set.
	Context() (string, bool)
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us keep the contract explicit in places where we don't want to depend on
// errors.As / errors.Is directly.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil. The returned value is
// for inspection only; ownership of the chain stays with the implementation.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}

// LocatedError represents an error that recorded the call site at which it
// was finalized. One frame, not a stack trace.
type LocatedError interface {
	error

	// Location returns the recorded call site and whether capture succeeded.
	Location() (errorsx.Location, bool)
}

// Renderer represents an error that can produce its full, deterministic
// human-readable rendering, including the cause chain.
//
// Render MUST be deterministic: two calls on the same value yield identical
// output. It is the string a logging or display collaborator shows; Error()
// stays the concise form.
type Renderer interface {
	error

	// Render returns the full rendering of the error and its cause chain.
	Render() string
}

// Compile-time checks that the concrete errorsx type satisfies the contracts
// this package promises to adapters.
var (
	_ StatusedError   = (*errorsx.Error)(nil)
	_ ContextualError = (*errorsx.Error)(nil)
	_ CausedError     = (*errorsx.Error)(nil)
	_ LocatedError    = (*errorsx.Error)(nil)
	_ Renderer        = (*errorsx.Error)(nil)
)
