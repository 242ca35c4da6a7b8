// Copyright 2025 Rıza Emre ARAS
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tbdict implements lookup over the TBD English-Turkish informatics
// terms dictionary.
//
// The dictionary is distributed as a single JSON document with two top-level
// members:
//  1. A "metadata" object describing the dataset: the source label, the
//     total term count, and a date-like version string.
//  2. A "terms" array of term pair records, each with an "en" and a "tr"
//     field.
//
// The document may optionally be gzip-compressed (a .json.gz file).
//
// The dictionary is loaded fully into memory once and is immutable
// afterwards, so a single Dictionary value can be shared freely between
// goroutines. Queries support exact, partial (substring), and fuzzy
// (edit-distance) matching against the English field, the Turkish field, or
// both. All comparisons are performed on folded text: terms are lowercased
// with Turkish casing rules and surrounding and repeated whitespace is
// collapsed.
package tbdict
