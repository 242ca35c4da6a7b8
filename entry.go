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

package tbdict

// Entry is a single dictionary record: an English term and its Turkish
// equivalent. Entries are never modified after the dictionary is loaded.
// Duplicate pairs are preserved as distinct entries.
type Entry struct {
	// EN is the English term.
	EN string `json:"en"`

	// TR is the Turkish term.
	TR string `json:"tr"`
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	return e.EN + " -> " + e.TR
}

// Result is a single query match. Score is in (0, 1] where 1.0 is a perfect
// match.
type Result struct {
	// Entry is the matched dictionary entry.
	Entry *Entry

	// Score indicates match quality. Exact matches always score 1.0. For
	// partial matches the score is the ratio of the query length to the
	// matched field length. For fuzzy matches it is the string similarity.
	Score float64
}
