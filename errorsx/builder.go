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

package errorsx

// ErrorBuilder is the mutable, single-use accumulator behind Error.
//
// Every WithX method sets its field and returns the receiver, so calls chain:
//
//	err := errorsx.Builder("parse failed").
//	    WithContext("reading config").
//	    WithStatusCode(400).
//	    WithStatus("Bad Request").
//	    Build()
//
// A builder belongs to exactly one logical construction and must not be
// shared across goroutines. After Build it must not be reused.
type ErrorBuilder struct {
	err Error
}

// Builder starts a new ErrorBuilder with the given message.
//
// The message is required and must be non-empty. An empty message is a caller
// bug: it is accepted structurally (no validation, no panic), but the
// resulting error is meaningless.
func Builder(message string) *ErrorBuilder {
	return &ErrorBuilder{err: Error{message: message}}
}

// New builds an Error carrying only a message, recording the caller of New
// as the location. Shorthand for Builder(message).Build().
func New(message string) *Error {
	return Builder(message).finalize(1)
}

// WithContext sets the operation breadcrumb, e.g. "user authentication".
// Calling it again overwrites the previous value; context frames do not
// accumulate.
func (b *ErrorBuilder) WithContext(context string) *ErrorBuilder {
	b.err.context = context
	b.err.hasContext = true
	return b
}

// WithStatusCode sets the numeric status classification. No range is
// enforced; the caller picks domain-appropriate values (e.g. 400–599 for
// HTTP semantics). Last write wins.
func (b *ErrorBuilder) WithStatusCode(code int) *ErrorBuilder {
	b.err.statusCode = code
	b.err.hasStatusCode = true
	return b
}

// WithStatus sets the human-readable status label, independent of the
// numeric code. Last write wins.
func (b *ErrorBuilder) WithStatus(status string) *ErrorBuilder {
	b.err.status = status
	b.err.hasStatus = true
	return b
}

// WithSource attaches an already-formed error as the cause. Any error value
// is accepted — a previously built *Error or a foreign error type — and
// joins the cause chain uniformly. A nil source leaves the builder unchanged.
func (b *ErrorBuilder) WithSource(source error) *ErrorBuilder {
	if source == nil {
		return b
	}
	b.err.cause = source
	return b
}

// Build finalizes the builder into an immutable Error.
//
// The call site of Build — not of Builder — is captured as the error's
// location, so the recorded frame sits closest to where the failure was
// detected. Build returns a detached copy: the builder holds no reference to
// the result and must not be used again.
func (b *ErrorBuilder) Build() *Error {
	return b.finalize(1)
}

// finalize copies the accumulated fields and records the frame 'skip' levels
// above its caller as the location.
func (b *ErrorBuilder) finalize(skip int) *Error {
	e := b.err
	if loc, ok := captureLocation(skip + 1); ok {
		e.location = loc
		e.hasLocation = true
	}
	return &e
}
