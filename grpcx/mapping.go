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
	"net/http"

	"google.golang.org/grpc/codes"
)

// httpToGRPC defines the built-in mapping from HTTP-style numeric statuses to
// canonical gRPC status codes. These are only defaults: callers that need a
// different policy should resolve the code themselves before talking to gRPC.
var httpToGRPC = map[int]codes.Code{
	// 4xx — client / protocol / resource issues.
	http.StatusBadRequest:         codes.InvalidArgument,    // Malformed input, validation errors.
	http.StatusUnauthorized:       codes.Unauthenticated,    // No or invalid credentials.
	http.StatusForbidden:          codes.PermissionDenied,   // Authenticated but not allowed.
	http.StatusNotFound:           codes.NotFound,           // Target resource does not exist.
	http.StatusRequestTimeout:     codes.Canceled,           // Client gave up / request canceled.
	http.StatusConflict:           codes.Aborted,            // Conflicting update, uniqueness clash.
	http.StatusGone:               codes.NotFound,           // gRPC has no 410; NotFound is the closest practical choice.
	http.StatusPreconditionFailed: codes.FailedPrecondition, // If-Match / resource preconditions failed.
	http.StatusTooEarly:           codes.FailedPrecondition, // Request before the allowed time window.
	http.StatusTooManyRequests:    codes.ResourceExhausted,  // Rate limit / quota hit.

	// 5xx — server / dependency / transient issues.
	http.StatusInternalServerError: codes.Internal,         // Generic internal failure.
	http.StatusNotImplemented:      codes.Unimplemented,    // Operation not supported.
	http.StatusBadGateway:          codes.Unavailable,      // Upstream dependency failed.
	http.StatusServiceUnavailable:  codes.Unavailable,      // Service or dependency temporarily unreachable.
	http.StatusGatewayTimeout:      codes.DeadlineExceeded, // Time budget exceeded.
}

// grpcToHTTP is the reverse direction, used when rebuilding a structured
// error from a gRPC status that carries no metadata of its own.
var grpcToHTTP = map[codes.Code]int{
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.Unauthenticated:    http.StatusUnauthorized,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.NotFound:           http.StatusNotFound,
	codes.Canceled:           http.StatusRequestTimeout,
	codes.Aborted:            http.StatusConflict,
	codes.AlreadyExists:      http.StatusConflict,
	codes.FailedPrecondition: http.StatusPreconditionFailed,
	codes.OutOfRange:         http.StatusBadRequest,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.Internal:           http.StatusInternalServerError,
	codes.Unknown:            http.StatusInternalServerError,
	codes.DataLoss:           http.StatusInternalServerError,
	codes.Unimplemented:      http.StatusNotImplemented,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
}

// Code maps an HTTP-style numeric status to a gRPC status code.
//
// Statuses without an explicit entry fall back by class: any other 4xx maps
// to InvalidArgument, any other 5xx to Internal, and everything else to
// Unknown (the status space is domain-agnostic, so a value outside HTTP
// ranges carries no transport meaning).
func Code(httpStatus int) codes.Code {
	if c, ok := httpToGRPC[httpStatus]; ok {
		return c
	}
	switch {
	case httpStatus >= 400 && httpStatus < 500:
		return codes.InvalidArgument
	case httpStatus >= 500 && httpStatus < 600:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// HTTPStatus maps a gRPC status code back to an HTTP-style status.
// Unmapped codes resolve to 500.
func HTTPStatus(c codes.Code) int {
	if s, ok := grpcToHTTP[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}
