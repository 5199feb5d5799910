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

package stringsx

import "unicode/utf8"

// TruncateBytes caps s at length bytes while keeping the result valid UTF-8:
// when the cut would land inside a multi-byte rune, the boundary backs off to
// the start of that rune.
//
// A non-positive length means "no limit", and an input already shorter than
// length is returned unchanged.
func TruncateBytes(s string, length int) string {
	if length <= 0 || len(s) < length {
		return s
	}

	valid := length
	for valid < len(s) && !utf8.RuneStart(s[valid]) {
		valid--
	}
	return s[:valid]
}
