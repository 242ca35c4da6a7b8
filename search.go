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
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/xrash/smetrics"

	"github.com/remrearas/go-tbdict/internal/folding"
)

// ErrInvalidQuery is a parent error for query configuration errors.
var ErrInvalidQuery = errors.New("invalid query configuration")

// ErrInvalidMode indicates an unrecognized match mode.
var ErrInvalidMode = fmt.Errorf("%w: unrecognized mode", ErrInvalidQuery)

// ErrInvalidDirection indicates an unrecognized search direction.
var ErrInvalidDirection = fmt.Errorf("%w: unrecognized direction", ErrInvalidQuery)

// Mode is a term matching strategy.
type Mode string

const (
	// ModeExact matches entries whose folded field equals the folded query.
	ModeExact Mode = "exact"

	// ModePartial matches entries whose folded field contains the folded
	// query as a contiguous substring.
	ModePartial Mode = "partial"

	// ModeFuzzy matches entries whose folded field is similar to the folded
	// query within an edit-distance threshold.
	ModeFuzzy Mode = "fuzzy"
)

// Direction selects which entry fields a query is compared against.
type Direction string

const (
	// DirectionEN compares the query against the English field only.
	DirectionEN Direction = "en"

	// DirectionTR compares the query against the Turkish field only.
	DirectionTR Direction = "tr"

	// DirectionBoth compares the query against both fields. An entry
	// qualifies if either field qualifies and scores the better of the two.
	DirectionBoth Direction = "both"
)

// SearchOptions are options for a dictionary search.
type SearchOptions struct {
	// Mode is the matching strategy. Empty means DefaultSearchOptions.Mode.
	Mode Mode

	// Direction selects the compared fields. Empty means
	// DefaultSearchOptions.Direction.
	Direction Direction

	// Limit caps the number of returned results. Zero or negative means no
	// cap.
	Limit int

	// MinSimilarity is the fuzzy mode qualification threshold on a 0-1
	// scale. Zero means DefaultSearchOptions.MinSimilarity.
	MinSimilarity float64
}

// DefaultSearchOptions is the default options for a search.
var DefaultSearchOptions = &SearchOptions{
	Mode:          ModeFuzzy,
	Direction:     DirectionBoth,
	Limit:         10,
	MinSimilarity: 0.6,
}

// candidate is a qualifying entry before ranking.
type candidate struct {
	entry *Entry
	score float64

	// fieldLen is the folded rune length of the matched field. It breaks
	// score ties in partial mode, shorter field first.
	fieldLen int
}

// Search scans the dictionary for entries matching the query and returns
// them ordered by descending score. Score ties preserve dataset order. An
// empty or whitespace-only query returns no results and no error. The same
// query against the same dictionary always returns identical results.
func (d *Dictionary) Search(query string, options *SearchOptions) ([]*Result, error) {
	opts := *DefaultSearchOptions
	if options != nil {
		opts = *options
		if opts.Mode == "" {
			opts.Mode = DefaultSearchOptions.Mode
		}
		if opts.Direction == "" {
			opts.Direction = DefaultSearchOptions.Direction
		}
		if opts.MinSimilarity == 0 {
			opts.MinSimilarity = DefaultSearchOptions.MinSimilarity
		}
	}

	switch opts.Mode {
	case ModeExact, ModePartial, ModeFuzzy:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, opts.Mode)
	}
	switch opts.Direction {
	case DirectionEN, DirectionTR, DirectionBoth:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, opts.Direction)
	}

	folded, err := folding.Fold(query)
	if err != nil {
		return nil, fmt.Errorf("folding query: %w", err)
	}
	if folded == "" {
		return nil, nil
	}

	var candidates []*candidate
	switch opts.Mode {
	case ModeExact:
		candidates = d.exactMatch(folded, opts.Direction)
	case ModePartial:
		candidates = d.partialMatch(folded, opts.Direction)
	case ModeFuzzy:
		candidates = d.fuzzyMatch(folded, opts.Direction, opts.MinSimilarity)
	}

	// Candidates are gathered in dataset order, so a stable sort preserves
	// it for ties.
	slices.SortStableFunc(candidates, func(a, b *candidate) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return a.fieldLen - b.fieldLen
	})

	if opts.Limit > 0 && len(candidates) > opts.Limit {
		candidates = candidates[:opts.Limit]
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	results := make([]*Result, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, &Result{Entry: c.entry, Score: c.score})
	}
	return results, nil
}

// exactMatch looks up the folded query in the sorted field indexes.
func (d *Dictionary) exactMatch(query string, dir Direction) []*candidate {
	var hits []*indexedTerm
	if dir == DirectionEN || dir == DirectionBoth {
		hits = append(hits, d.enIndex.Search(query)...)
	}
	if dir == DirectionTR || dir == DirectionBoth {
		hits = append(hits, d.trIndex.Search(query)...)
	}

	// An entry matching in both fields counts once.
	positions := make([]int, 0, len(hits))
	seen := make(map[int]bool, len(hits))
	for _, h := range hits {
		if !seen[h.pos] {
			seen[h.pos] = true
			positions = append(positions, h.pos)
		}
	}
	slices.Sort(positions)

	candidates := make([]*candidate, 0, len(positions))
	for _, pos := range positions {
		candidates = append(candidates, &candidate{entry: d.entries[pos], score: 1.0})
	}
	return candidates
}

// partialMatch scans for entries whose folded field contains the folded
// query. The score is the ratio of the query length to the field length so
// closer-length matches rank higher.
func (d *Dictionary) partialMatch(query string, dir Direction) []*candidate {
	queryLen := utf8.RuneCountInString(query)

	var candidates []*candidate
	for i, e := range d.entries {
		best := &candidate{entry: e}
		if dir == DirectionEN || dir == DirectionBoth {
			substringScore(best, d.foldedEN[i], query, queryLen)
		}
		if dir == DirectionTR || dir == DirectionBoth {
			substringScore(best, d.foldedTR[i], query, queryLen)
		}
		if best.score > 0 {
			candidates = append(candidates, best)
		}
	}
	return candidates
}

// substringScore updates c if field contains query with a better score than
// the current one. Containment only runs field-contains-query; a query
// longer than the field never matches.
func substringScore(c *candidate, field, query string, queryLen int) {
	if !strings.Contains(field, query) {
		return
	}
	fieldLen := utf8.RuneCountInString(field)
	score := float64(queryLen) / float64(fieldLen)
	if score > c.score {
		c.score = score
		c.fieldLen = fieldLen
	}
}

// fuzzyMatch scans for entries whose folded field similarity to the folded
// query meets the threshold.
func (d *Dictionary) fuzzyMatch(query string, dir Direction, minSimilarity float64) []*candidate {
	var candidates []*candidate
	for i, e := range d.entries {
		var score float64
		if dir == DirectionEN || dir == DirectionBoth {
			score = Similarity(query, d.foldedEN[i])
		}
		if dir == DirectionTR || dir == DirectionBoth {
			if s := Similarity(query, d.foldedTR[i]); s > score {
				score = s
			}
		}
		if score >= minSimilarity {
			candidates = append(candidates, &candidate{entry: e, score: score})
		}
	}
	return candidates
}

// Similarity returns a normalized edit-distance similarity of a and b on a
// 0-1 scale where 1.0 means the strings are identical. The measure is
// symmetric and decreases with the number of single-character insertions,
// deletions, and substitutions needed to transform one string into the
// other, normalized by the longer string's length. Inputs are compared as
// given; Search applies it to folded text.
func Similarity(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	distance := smetrics.WagnerFischer(a, b, 1, 1, 1)
	similarity := 1 - float64(distance)/float64(maxLen)
	if similarity < 0 {
		return 0
	}
	return similarity
}

