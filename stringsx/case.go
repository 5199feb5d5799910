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

// Package stringsx provides small string helpers: initial-case conversion,
// coalescing, splitting, and byte-safe truncation.
package stringsx

import (
	"unicode"
	"unicode/utf8"
)

// ToUpperInitials returns s with its first rune upper-cased.
// The empty string is returned unchanged.
func ToUpperInitials(s string) string {
	return mapInitial(s, unicode.ToUpper)
}

// ToLowerInitials returns s with its first rune lower-cased.
// The empty string is returned unchanged.
func ToLowerInitials(s string) string {
	return mapInitial(s, unicode.ToLower)
}

func mapInitial(s string, f func(rune) rune) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	mapped := f(r)
	if mapped == r {
		return s
	}
	return string(mapped) + s[size:]
}
