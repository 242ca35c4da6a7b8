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

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var searchPairs = [][2]string{
	{"cloud", "bulut"},
	{"cloud computing", "bulut bilişim"},
	{"database", "veri tabanı"},
	{"metadata", "üstveri"},
	{"data", "veri"},
	{"turtle", "kaplumbağa"},
	{"data mining", "veri madenciliği"},
	{"cloud", "bulut"},
}

func TestDictionary_Search(t *testing.T) {
	t.Parallel()

	d := mustLoad(t, searchPairs)

	tests := []struct {
		name     string
		query    string
		options  *SearchOptions
		expected []*Result
	}{
		{
			name:    "exact en",
			query:   "cloud",
			options: &SearchOptions{Mode: ModeExact, Direction: DirectionEN},
			expected: []*Result{
				{Entry: &Entry{EN: "cloud", TR: "bulut"}, Score: 1.0},
				{Entry: &Entry{EN: "cloud", TR: "bulut"}, Score: 1.0},
			},
		},
		{
			name:    "exact folds case and whitespace",
			query:   "  CLOUD   Computing ",
			options: &SearchOptions{Mode: ModeExact, Direction: DirectionEN},
			expected: []*Result{
				{Entry: &Entry{EN: "cloud computing", TR: "bulut bilişim"}, Score: 1.0},
			},
		},
		{
			name:    "exact folds turkish dotted i",
			query:   "VERİ MADENCİLİĞİ",
			options: &SearchOptions{Mode: ModeExact, Direction: DirectionTR},
			expected: []*Result{
				{Entry: &Entry{EN: "data mining", TR: "veri madenciliği"}, Score: 1.0},
			},
		},
		{
			name:     "exact wrong direction",
			query:    "bulut",
			options:  &SearchOptions{Mode: ModeExact, Direction: DirectionEN},
			expected: nil,
		},
		{
			name:    "exact both counts entry once",
			query:   "cloud",
			options: &SearchOptions{Mode: ModeExact, Direction: DirectionBoth},
			expected: []*Result{
				{Entry: &Entry{EN: "cloud", TR: "bulut"}, Score: 1.0},
				{Entry: &Entry{EN: "cloud", TR: "bulut"}, Score: 1.0},
			},
		},
		{
			name:    "partial en",
			query:   "data",
			options: &SearchOptions{Mode: ModePartial, Direction: DirectionEN},
			expected: []*Result{
				{Entry: &Entry{EN: "data", TR: "veri"}, Score: 1.0},
				{Entry: &Entry{EN: "database", TR: "veri tabanı"}, Score: 4.0 / 8.0},
				{Entry: &Entry{EN: "metadata", TR: "üstveri"}, Score: 4.0 / 8.0},
				{Entry: &Entry{EN: "data mining", TR: "veri madenciliği"}, Score: 4.0 / 11.0},
			},
		},
		{
			name:    "partial both takes best field",
			query:   "veri",
			options: &SearchOptions{Mode: ModePartial, Direction: DirectionBoth},
			expected: []*Result{
				{Entry: &Entry{EN: "data", TR: "veri"}, Score: 1.0},
				{Entry: &Entry{EN: "metadata", TR: "üstveri"}, Score: 4.0 / 7.0},
				{Entry: &Entry{EN: "database", TR: "veri tabanı"}, Score: 4.0 / 11.0},
				{Entry: &Entry{EN: "data mining", TR: "veri madenciliği"}, Score: 4.0 / 16.0},
			},
		},
		{
			name:     "partial query longer than field",
			query:    "database systems",
			options:  &SearchOptions{Mode: ModePartial, Direction: DirectionEN},
			expected: nil,
		},
		{
			name:    "fuzzy tolerates misspelling",
			query:   "claud",
			options: &SearchOptions{Mode: ModeFuzzy, Direction: DirectionEN, MinSimilarity: 0.6},
			expected: []*Result{
				{Entry: &Entry{EN: "cloud", TR: "bulut"}, Score: 1.0 - 1.0/5.0},
				{Entry: &Entry{EN: "cloud", TR: "bulut"}, Score: 1.0 - 1.0/5.0},
			},
		},
		{
			name:     "empty query",
			query:    "",
			options:  &SearchOptions{Mode: ModeExact, Direction: DirectionEN},
			expected: nil,
		},
		{
			name:     "whitespace only query",
			query:    "   \t ",
			options:  &SearchOptions{Mode: ModeFuzzy, Direction: DirectionBoth},
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			results, err := d.Search(test.query, test.options)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if diff := cmp.Diff(test.expected, results); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDictionary_Search_errors(t *testing.T) {
	t.Parallel()

	d := mustLoad(t, searchPairs)

	tests := []struct {
		name    string
		options *SearchOptions
		err     error
	}{
		{
			name:    "unknown mode",
			options: &SearchOptions{Mode: "regex", Direction: DirectionEN},
			err:     ErrInvalidMode,
		},
		{
			name:    "unknown direction",
			options: &SearchOptions{Mode: ModeExact, Direction: "de"},
			err:     ErrInvalidDirection,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := d.Search("cloud", test.options)
			if !errors.Is(err, test.err) {
				t.Fatalf("Search: want %v, got %v", test.err, err)
			}
			// Configuration errors are request errors, not data errors.
			if !errors.Is(err, ErrInvalidQuery) {
				t.Fatalf("Search: want %v, got %v", ErrInvalidQuery, err)
			}
		})
	}
}

func TestDictionary_Search_limit(t *testing.T) {
	t.Parallel()

	d := mustLoad(t, searchPairs)
	options := &SearchOptions{Mode: ModePartial, Direction: DirectionEN}

	uncapped, err := d.Search("data", options)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(uncapped) < 3 {
		t.Fatalf("Search: expected at least 3 uncapped results, got %d", len(uncapped))
	}

	capped, err := d.Search("data", &SearchOptions{
		Mode:      options.Mode,
		Direction: options.Direction,
		Limit:     2,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	// The capped results must be the top of the uncapped ordering.
	if diff := cmp.Diff(uncapped[:2], capped); diff != "" {
		t.Fatalf("Search (-want, +got):\n%s", diff)
	}
}

func TestDictionary_Search_idempotent(t *testing.T) {
	t.Parallel()

	d := mustLoad(t, searchPairs)
	options := &SearchOptions{Mode: ModeFuzzy, Direction: DirectionBoth, MinSimilarity: 0.3}

	first, err := d.Search("cloud", options)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	second, err := d.Search("cloud", options)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Search (-first, +second):\n%s", diff)
	}
}

func TestDictionary_Search_ordering(t *testing.T) {
	t.Parallel()

	d := mustLoad(t, searchPairs)

	results, err := d.Search("a", &SearchOptions{
		Mode:          ModeFuzzy,
		Direction:     DirectionBoth,
		MinSimilarity: 0.01,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("Search: result %d score %v above previous %v", i, results[i].Score, results[i-1].Score)
		}
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	if want, got := 1.0, Similarity("cloud", "cloud"); want != got {
		t.Errorf("Similarity; want: %v, got: %v", want, got)
	}
	if want, got := 0.0, Similarity("", ""); want != got {
		t.Errorf("Similarity; want: %v, got: %v", want, got)
	}
	if want, got := 0.0, Similarity("cloud", ""); want != got {
		t.Errorf("Similarity; want: %v, got: %v", want, got)
	}

	// Symmetry.
	if a, b := Similarity("claud", "cloud"), Similarity("cloud", "claud"); a != b {
		t.Errorf("Similarity not symmetric: %v != %v", a, b)
	}

	// More edits means a lower score.
	near := Similarity("claud", "cloud")
	far := Similarity("claud", "turtle")
	if near <= far {
		t.Errorf("Similarity; want %v > %v", near, far)
	}
	if near < 0.6 {
		t.Errorf("Similarity; want claud/cloud above threshold, got %v", near)
	}
}
