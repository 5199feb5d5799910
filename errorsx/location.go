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
	"runtime"
	"strconv"
)

// Location is a lightweight provenance marker: the single call site recorded
// when an error was built. It is not a stack trace — one frame only.
type Location struct {
	// File is the absolute source file path as reported by the runtime.
	File string
	// Line is the line number within File.
	Line int
	// Function is the fully-qualified function name (pkg.Func or method).
	Function string
}

// String returns the conventional "file:line" form.
func (l Location) String() string {
	return l.File + ":" + strconv.Itoa(l.Line)
}

// captureLocation resolves the frame 'skip' levels above its direct caller
// (skip 0 records the caller itself).
//
// Resolution goes through runtime.Callers + runtime.CallersFrames so that
// inlined calls resolve to the correct source position.
//
// Skip accounting for runtime.Callers: 0 identifies Callers itself and 1 its
// caller, so +2 places skip 0 at captureLocation's caller.
func captureLocation(skip int) (Location, bool) {
	var pc [1]uintptr
	n := runtime.Callers(skip+2, pc[:])
	if n == 0 {
		return Location{}, false
	}
	fr, _ := runtime.CallersFrames(pc[:n]).Next()
	if fr.File == "" && fr.Line == 0 {
		return Location{}, false
	}
	return Location{File: fr.File, Line: fr.Line, Function: fr.Function}, true
}
