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

// Package grpcx converts between errorsx values and gRPC status values.
//
// Conversion is purely in-memory: this package builds and reads
// *status.Status values but never sends them anywhere. Wiring the result into
// a server or client stays with the caller.
package grpcx

import (
	"errors"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/toolkit/errorsx"
)

// Domain is the errdetails.ErrorInfo domain stamped on statuses produced by
// ToStatus, identifying this library as the origin of the metadata.
const Domain = "toolkit.dirpx.dev"

// Metadata keys used inside errdetails.ErrorInfo. FromStatus reads the same
// keys back, so the set must stay stable.
const (
	metaContext    = "context"
	metaStatus     = "status"
	metaStatusCode = "status_code"
	metaLocation   = "location"
	metaCause      = "cause"
)

// ToStatus converts a structured error into a *status.Status.
//
// The gRPC code is resolved from the error's HTTP-style status code via Code;
// an error without a status code becomes codes.Unknown. Context, status text,
// status code, location and the rendered cause are attached as an
// errdetails.ErrorInfo detail so that FromStatus can reverse the conversion.
//
// A nil error yields nil.
func ToStatus(e *errorsx.Error) *gstatus.Status {
	if e == nil {
		return nil
	}

	c := codes.Unknown
	httpCode, hasCode := e.StatusCode()
	if hasCode {
		c = Code(httpCode)
	}
	st := gstatus.New(c, e.Message())

	info := &errdetails.ErrorInfo{
		Domain:   Domain,
		Metadata: map[string]string{},
	}
	if text, ok := e.Status(); ok {
		info.Reason = reasonFromStatus(text)
		info.Metadata[metaStatus] = text
	}
	if hasCode {
		info.Metadata[metaStatusCode] = strconv.Itoa(httpCode)
	}
	if ctx, ok := e.Context(); ok {
		info.Metadata[metaContext] = ctx
	}
	if loc, ok := e.Location(); ok {
		info.Metadata[metaLocation] = loc.String()
	}
	if cause := e.Cause(); cause != nil {
		info.Metadata[metaCause] = cause.Error()
	}

	detailed, err := st.WithDetails(info)
	if err != nil {
		// Detail attachment failing must not lose the status itself.
		return st
	}
	return detailed
}

// FromStatus rebuilds a structured error from a gRPC status.
//
// When the status carries an ErrorInfo detail written by ToStatus, the
// context, status text, status code and cause description are recovered. A
// bare status falls back to the reverse code mapping for the status code.
//
// A nil or OK status yields nil.
func FromStatus(st *gstatus.Status) *errorsx.Error {
	if st == nil || st.Code() == codes.OK {
		return nil
	}

	b := errorsx.Builder(st.Message())
	recovered := false
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		recovered = true
		md := info.GetMetadata()
		if v := md[metaContext]; v != "" {
			b = b.WithContext(v)
		}
		if v := md[metaStatus]; v != "" {
			b = b.WithStatus(v)
		}
		if v := md[metaStatusCode]; v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				b = b.WithStatusCode(n)
			}
		}
		if v := md[metaCause]; v != "" {
			b = b.WithSource(errors.New(v))
		}
	}
	if !recovered {
		b = b.WithStatusCode(HTTPStatus(st.Code()))
	}
	return b.Build()
}

// reasonFromStatus normalizes a status label into the UPPER_SNAKE_CASE shape
// expected of ErrorInfo.Reason, e.g. "Bad Request" → "BAD_REQUEST".
func reasonFromStatus(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ToUpper(text)
	text = strings.ReplaceAll(text, " ", "_")
	text = strings.ReplaceAll(text, "-", "_")
	return text
}
