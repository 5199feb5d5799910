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

// Package httpx resolves HTTP-facing projections of errorsx values: the
// response status, its text, and a JSON body.
//
// Nothing here touches a connection or a ResponseWriter. The package produces
// plain values and lets the HTTP layer that owns the response decide what to
// do with them.
package httpx

import (
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/toolkit/adapter"
	"dirpx.dev/toolkit/errorsx"
)

// fallbackStatus is used when an error carries no status code of its own.
const fallbackStatus = http.StatusInternalServerError

// StatusOf returns the HTTP status for an error: its own status code when
// set, otherwise 500. A nil error has no failure to report and maps to 200.
func StatusOf(e *errorsx.Error) int {
	if e == nil {
		return http.StatusOK
	}
	if code, ok := e.StatusCode(); ok {
		return code
	}
	return fallbackStatus
}

// TextOf returns the status line text for an error: its own status label
// when set, otherwise the standard text for the resolved status code.
func TextOf(e *errorsx.Error) string {
	if e == nil {
		return http.StatusText(http.StatusOK)
	}
	if st, ok := e.Status(); ok {
		return st
	}
	return http.StatusText(StatusOf(e))
}

// Body serializes the error's full view (message, context, status, location
// and the nested cause chain) as a JSON object.
//
// The view travels through structpb and protojson rather than encoding/json
// so that the output shape stays consistent with the protobuf-based gRPC
// surface of this library.
func Body(e *errorsx.Error) ([]byte, error) {
	if e == nil {
		return nil, nil
	}
	view := adapter.ToView(e)
	s, err := structpb.NewStruct(view.Map())
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{UseProtoNames: true}.Marshal(s)
}
