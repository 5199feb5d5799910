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

// Package apis defines the public Go-level contracts for toolkit error
// handling.
//
// The goal of this package is to provide *small, composable* interfaces that
// adapters can depend on without importing more of the concrete error
// implementation than necessary. Status mapping code, converters and loggers
// target these contracts; the concrete type in errorsx implements them.
//
// This package must remain lightweight: interfaces and very small view types
// only, no heavy dependencies.
package apis
