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

// Package errorsx provides a fluent builder for structured, immutable error
// values that carry a message, an optional operation context, an optional
// status code and status text, a single call-site location, and an optional
// wrapped cause.
//
// Construction goes through ErrorBuilder:
//
//	err := errorsx.Builder("failed to process file").
//	    WithContext("processing user upload").
//	    WithStatusCode(500).
//	    WithStatus("Internal Server Error").
//	    WithSource(ioErr).
//	    Build()
//
// Build finalizes the builder into an *Error, which is immutable from that
// point on and therefore safe to share across goroutines for reading. The
// builder itself is single-use: once Build has been called it must not be
// touched again.
//
// Error integrates with the standard library: it implements the error
// interface, supports errors.Is / errors.As through Unwrap, and renders
// verbosely under %+v. Render produces the full cause-chain string, with
// levels joined by ": caused by ".
//
// This package constructs values only. Mapping to transport statuses and
// serialized views lives in the adapter, grpcx and httpx packages.
package errorsx
