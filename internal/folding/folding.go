// Copyright 2025 Rıza Emre ARAS
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding normalizes dictionary terms and queries before comparison.
//
// Folding lowercases text using Turkish casing rules (so İ maps to i and I
// maps to ı) and collapses whitespace. Two strings that fold to the same
// value are considered equal by every search mode.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// New returns a transformer that performs term folding. Lowercasing happens
// before whitespace folding so that case mappings never reintroduce
// whitespace spans.
func New() transform.Transformer {
	return transform.Chain(cases.Lower(language.Turkish), &WhitespaceFolder{})
}

// Fold returns the folded form of s.
func Fold(s string) (string, error) {
	folded, _, err := transform.String(New(), s)
	if err != nil {
		return "", err
	}
	return folded, nil
}
