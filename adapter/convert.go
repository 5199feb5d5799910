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

// Package adapter converts errorsx values into the portable view shapes
// defined in apis. It performs no redaction or filtering: whatever the error
// instance contains is exposed as-is, and it is up to the caller to apply
// policies before the result reaches a client.
package adapter

import (
	"dirpx.dev/toolkit/apis"
	"dirpx.dev/toolkit/errorsx"
)

// ToView converts an error into a nested apis.ErrorView covering the whole
// cause chain.
//
// Built errorsx values contribute all of their fields; a foreign error in
// the chain becomes a message-only leaf carrying its Error() string.
func ToView(e *errorsx.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{Message: e.Message()}
	if ctx, ok := e.Context(); ok {
		v.Context = ctx
	}
	if code, ok := e.StatusCode(); ok {
		v.StatusCode = code
	}
	if st, ok := e.Status(); ok {
		v.Status = st
	}
	if loc, ok := e.Location(); ok {
		v.Location = loc.String()
	}
	if cause := e.Cause(); cause != nil {
		cv := causeView(cause)
		v.Cause = &cv
	}
	return v
}

func causeView(err error) apis.ErrorView {
	if de, ok := err.(*errorsx.Error); ok {
		return ToView(de)
	}
	return apis.ErrorView{Message: err.Error()}
}

// ToDescriptor converts an error into a flat apis.ErrorDescriptor.
//
// The descriptor is intended for structured logging or tracing attributes:
// the cause chain is collapsed into the Rendered field rather than nested.
func ToDescriptor(e *errorsx.Error) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Message:  e.Message(),
		Rendered: e.Render(),
	}
	if ctx, ok := e.Context(); ok {
		d.Context = ctx
	}
	if code, ok := e.StatusCode(); ok {
		d.StatusCode = code
	}
	if st, ok := e.Status(); ok {
		d.Status = st
	}
	if loc, ok := e.Location(); ok {
		d.Location = loc.String()
	}
	return d
}
