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

import (
	"fmt"
	"strconv"
	"strings"
)

// CauseDelimiter is the separator Render places between levels of the cause
// chain. It is part of the public contract: callers and tests may rely on it.
const CauseDelimiter = ": caused by "

// Error is the immutable, structured error value produced by ErrorBuilder.
//
// It carries:
//   - Message: human-oriented description of what failed (always present);
//   - Context: optional breadcrumb naming the operation under way;
//   - StatusCode / Status: optional numeric classification and its label;
//   - Location: optional call-site recorded when the error was built;
//   - Cause: optional wrapped underlying error.
//
// All fields are fixed at Build time. An Error never changes afterwards,
// which makes it safe to share for read-only access without synchronization.
//
// The cause chain is a singly-linked list: each Error owns at most one cause,
// and a cause is always fully built before it is attached, so the chain is
// acyclic by construction.
type Error struct {
	message string

	context    string
	hasContext bool

	statusCode    int
	hasStatusCode bool

	status    string
	hasStatus bool

	location    Location
	hasLocation bool

	cause error
}

// Message returns the top-level message.
func (e *Error) Message() string { return e.message }

// Context returns the operation breadcrumb and whether one was set.
// An absent context is reported as ("", false), never as a silent default.
func (e *Error) Context() (string, bool) { return e.context, e.hasContext }

// StatusCode returns the numeric status classification and whether one was
// set. The value is domain-agnostic; this package never validates its range.
func (e *Error) StatusCode() (int, bool) { return e.statusCode, e.hasStatusCode }

// Status returns the human-readable status label and whether one was set.
// It is independent of StatusCode: no pairing between the two is enforced.
func (e *Error) Status() (string, bool) { return e.status, e.hasStatus }

// Location returns the call site recorded at Build time and whether capture
// succeeded.
func (e *Error) Location() (Location, bool) { return e.location, e.hasLocation }

// Cause returns the wrapped underlying error, or nil. The returned value is
// for inspection only; the chain remains owned by the receiving Error.
func (e *Error) Cause() error { return e.cause }

// Error implements the built-in error interface.
//
// The format is the conventional wrapping form:
//
//	<message>
//
// or, when a cause is attached:
//
//	<message>: <cause>
//
// Use Render for the full structured form including context and status.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.cause }

// Render produces the full human-readable rendering of the error and its
// cause chain. Per level the output is:
//
//	<message>[ (context: <context>)][ [<status_code> <status>]]
//
// with absent fields omitted, and levels joined by CauseDelimiter. A cause
// that is not an *Error contributes its Error() string (or its own Render()
// when it provides one).
//
// The output is deterministic: rendering the same value twice yields
// identical strings.
func (e *Error) Render() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e *Error) render(b *strings.Builder) {
	b.WriteString(e.message)
	if e.hasContext {
		b.WriteString(" (context: ")
		b.WriteString(e.context)
		b.WriteByte(')')
	}
	if e.hasStatusCode || e.hasStatus {
		b.WriteString(" [")
		if e.hasStatusCode {
			b.WriteString(strconv.Itoa(e.statusCode))
		}
		if e.hasStatusCode && e.hasStatus {
			b.WriteByte(' ')
		}
		if e.hasStatus {
			b.WriteString(e.status)
		}
		b.WriteByte(']')
	}
	if e.cause == nil {
		return
	}
	b.WriteString(CauseDelimiter)
	switch c := e.cause.(type) {
	case *Error:
		// A typed-nil *Error slips past the builder's nil guard; render it
		// the way Error() does instead of dereferencing it.
		if c == nil {
			b.WriteString("<nil>")
			return
		}
		c.render(b)
	case interface{ Render() string }:
		b.WriteString(c.Render())
	default:
		b.WriteString(c.Error())
	}
}

// Format implements fmt.Formatter.
//
//	%s, %v  → concise string (Error()).
//	%q      → quoted concise string.
//	%+v     → verbose multi-line form:
//	            msg="<message>"
//	            context: <context>
//	            status: <code> <text>
//	            location: <file>:<line>
//	            cause: <recursively formatted with %+v>
func (e *Error) Format(s fmt.State, verb rune) {
	if e == nil {
		_, _ = fmt.Fprint(s, "<nil>")
		return
	}
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprint(s, e.Error())
	}
}

func (e *Error) formatVerbose(s fmt.State) {
	_, _ = fmt.Fprintf(s, "msg=%q", e.message)
	if e.hasContext {
		_, _ = fmt.Fprintf(s, "\ncontext: %s", e.context)
	}
	if e.hasStatusCode || e.hasStatus {
		_, _ = fmt.Fprint(s, "\nstatus:")
		if e.hasStatusCode {
			_, _ = fmt.Fprintf(s, " %d", e.statusCode)
		}
		if e.hasStatus {
			_, _ = fmt.Fprintf(s, " %s", e.status)
		}
	}
	if e.hasLocation {
		_, _ = fmt.Fprintf(s, "\nlocation: %s", e.location)
	}
	if e.cause != nil {
		// Recurse with %+v so nested locations render if available.
		_, _ = fmt.Fprintf(s, "\ncause: %+v", e.cause)
	}
}
