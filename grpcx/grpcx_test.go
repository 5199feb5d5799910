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

package grpcx

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/toolkit/errorsx"
)

func TestCode_Table(t *testing.T) {
	tests := []struct {
		httpStatus int
		want       codes.Code
	}{
		{http.StatusBadRequest, codes.InvalidArgument},
		{http.StatusUnauthorized, codes.Unauthenticated},
		{http.StatusForbidden, codes.PermissionDenied},
		{http.StatusNotFound, codes.NotFound},
		{http.StatusConflict, codes.Aborted},
		{http.StatusTooManyRequests, codes.ResourceExhausted},
		{http.StatusInternalServerError, codes.Internal},
		{http.StatusNotImplemented, codes.Unimplemented},
		{http.StatusServiceUnavailable, codes.Unavailable},
		{http.StatusGatewayTimeout, codes.DeadlineExceeded},
		// Class fallbacks and out-of-range values.
		{418, codes.InvalidArgument},
		{599, codes.Internal},
		{0, codes.Unknown},
		{200, codes.Unknown},
	}
	for _, tt := range tests {
		if got := Code(tt.httpStatus); got != tt.want {
			t.Fatalf("Code(%d) = %v, want %v", tt.httpStatus, got, tt.want)
		}
	}
}

func TestToStatus_CodeAndMessage(t *testing.T) {
	e := errorsx.Builder("resource missing").WithStatusCode(404).Build()

	st := ToStatus(e)
	if st.Code() != codes.NotFound {
		t.Fatalf("Code() = %v", st.Code())
	}
	if st.Message() != "resource missing" {
		t.Fatalf("Message() = %q", st.Message())
	}
}

func TestToStatus_NoStatusCode(t *testing.T) {
	st := ToStatus(errorsx.New("boom"))
	if st.Code() != codes.Unknown {
		t.Fatalf("Code() = %v, want Unknown", st.Code())
	}
}

func TestToStatus_Details(t *testing.T) {
	e := errorsx.Builder("parse failed").
		WithContext("reading config").
		WithStatusCode(400).
		WithStatus("Bad Request").
		WithSource(errors.New("unexpected token")).
		Build()

	st := ToStatus(e)

	var info *errdetails.ErrorInfo
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			info = ei
		}
	}
	if info == nil {
		t.Fatal("ErrorInfo detail missing")
	}
	if info.GetDomain() != Domain {
		t.Fatalf("Domain = %q", info.GetDomain())
	}
	if info.GetReason() != "BAD_REQUEST" {
		t.Fatalf("Reason = %q", info.GetReason())
	}

	md := info.GetMetadata()
	if md[metaContext] != "reading config" {
		t.Fatalf("context metadata = %q", md[metaContext])
	}
	if md[metaStatusCode] != "400" {
		t.Fatalf("status_code metadata = %q", md[metaStatusCode])
	}
	if md[metaStatus] != "Bad Request" {
		t.Fatalf("status metadata = %q", md[metaStatus])
	}
	if md[metaCause] != "unexpected token" {
		t.Fatalf("cause metadata = %q", md[metaCause])
	}
	if md[metaLocation] == "" {
		t.Fatal("location metadata missing")
	}
}

func TestToStatus_Nil(t *testing.T) {
	if st := ToStatus(nil); st != nil {
		t.Fatalf("ToStatus(nil) = %v", st)
	}
}

func TestFromStatus_RoundTrip(t *testing.T) {
	e := errorsx.Builder("parse failed").
		WithContext("reading config").
		WithStatusCode(400).
		WithStatus("Bad Request").
		WithSource(errors.New("unexpected token")).
		Build()

	got := FromStatus(ToStatus(e))

	if got.Message() != "parse failed" {
		t.Fatalf("Message() = %q", got.Message())
	}
	if ctx, ok := got.Context(); !ok || ctx != "reading config" {
		t.Fatalf("Context() = %q, %v", ctx, ok)
	}
	if code, ok := got.StatusCode(); !ok || code != 400 {
		t.Fatalf("StatusCode() = %d, %v", code, ok)
	}
	if st, ok := got.Status(); !ok || st != "Bad Request" {
		t.Fatalf("Status() = %q, %v", st, ok)
	}
	cause := got.Cause()
	if cause == nil || cause.Error() != "unexpected token" {
		t.Fatalf("Cause() = %v", cause)
	}
}

func TestFromStatus_Bare(t *testing.T) {
	got := FromStatus(gstatus.New(codes.Unavailable, "db is down"))

	if got.Message() != "db is down" {
		t.Fatalf("Message() = %q", got.Message())
	}
	if code, ok := got.StatusCode(); !ok || code != http.StatusServiceUnavailable {
		t.Fatalf("StatusCode() = %d, %v", code, ok)
	}
}

func TestFromStatus_NilAndOK(t *testing.T) {
	if got := FromStatus(nil); got != nil {
		t.Fatalf("FromStatus(nil) = %v", got)
	}
	if got := FromStatus(gstatus.New(codes.OK, "")); got != nil {
		t.Fatalf("FromStatus(OK) = %v", got)
	}
}
