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

// Package uuidx provides UUID generation. Currently only random version 4
// identifiers are supported.
package uuidx

import "github.com/google/uuid"

// NewV4 returns a new random version 4 UUID.
func NewV4() uuid.UUID {
	return uuid.New()
}

// NewString returns a new random version 4 UUID in its canonical
// 8-4-4-4-12 string form.
func NewString() string {
	return uuid.NewString()
}
