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
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/remrearas/go-tbdict/internal/folding"
	"github.com/remrearas/go-tbdict/internal/index"
)

// ErrDataUnavailable indicates that the dataset file is missing, unreadable,
// or structurally invalid. A dictionary cannot be used when loading fails
// with this error.
var ErrDataUnavailable = errors.New("dictionary data unavailable")

// Metadata describes the dataset the dictionary was loaded from.
type Metadata struct {
	// Source is a label for the source document.
	Source string `json:"source"`

	// TotalTerms is the term count recorded by the extraction step.
	TotalTerms int `json:"total_terms"`

	// Version is a date-like dataset version string.
	Version string `json:"version"`
}

// document is the on-disk shape of the dataset file.
type document struct {
	Metadata Metadata `json:"metadata"`
	Terms    []*Entry `json:"terms"`
}

// indexedTerm is a folded term field keyed into the exact-match index.
type indexedTerm struct {
	folded string
	pos    int
	entry  *Entry
}

func (t *indexedTerm) String() string {
	return t.folded
}

// Dictionary is an immutable in-memory term dictionary. It is safe for
// concurrent use; no query mutates it.
type Dictionary struct {
	meta    Metadata
	entries []*Entry

	// foldedEN and foldedTR hold the folded field values by entry position.
	// They are computed once at load time so queries never re-fold entry
	// text.
	foldedEN []string
	foldedTR []string

	// enIndex and trIndex are sorted indexes over the folded fields used by
	// exact mode.
	enIndex *index.Index[*indexedTerm]
	trIndex *index.Index[*indexedTerm]
}

// Open opens a dictionary dataset from the given path. Files with a .gz
// extension are treated as gzip-compressed JSON.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrDataUnavailable, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.ToLower(filepath.Ext(path)) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %w", ErrDataUnavailable, path, err)
		}
		defer gz.Close()
		r = gz
	}

	d, err := New(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// New reads a dictionary dataset document from r.
func New(r io.Reader) (*Dictionary, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decoding dataset: %w", ErrDataUnavailable, err)
	}
	if len(doc.Terms) == 0 {
		return nil, fmt.Errorf("%w: dataset contains no terms", ErrDataUnavailable)
	}

	d := &Dictionary{
		meta:     doc.Metadata,
		entries:  doc.Terms,
		foldedEN: make([]string, len(doc.Terms)),
		foldedTR: make([]string, len(doc.Terms)),
	}

	enTerms := make([]*indexedTerm, 0, len(doc.Terms))
	trTerms := make([]*indexedTerm, 0, len(doc.Terms))
	for i, e := range doc.Terms {
		if e == nil || e.EN == "" || e.TR == "" {
			return nil, fmt.Errorf("%w: term %d: missing en or tr field", ErrDataUnavailable, i)
		}

		fen, err := folding.Fold(e.EN)
		if err != nil {
			return nil, fmt.Errorf("%w: term %d: folding %q: %w", ErrDataUnavailable, i, e.EN, err)
		}
		ftr, err := folding.Fold(e.TR)
		if err != nil {
			return nil, fmt.Errorf("%w: term %d: folding %q: %w", ErrDataUnavailable, i, e.TR, err)
		}

		d.foldedEN[i] = fen
		d.foldedTR[i] = ftr
		enTerms = append(enTerms, &indexedTerm{folded: fen, pos: i, entry: e})
		trTerms = append(trTerms, &indexedTerm{folded: ftr, pos: i, entry: e})
	}

	d.enIndex = index.New(enTerms, strings.Compare)
	d.trIndex = index.New(trTerms, strings.Compare)

	return d, nil
}

// Source returns the dataset source label.
func (d *Dictionary) Source() string {
	return d.meta.Source
}

// Version returns the dataset version string.
func (d *Dictionary) Version() string {
	return d.meta.Version
}

// TotalTerms returns the term count recorded in the dataset metadata.
func (d *Dictionary) TotalTerms() int {
	return d.meta.TotalTerms
}

// Len returns the number of loaded entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns the dictionary entries in dataset order.
func (d *Dictionary) Entries() []*Entry {
	return slices.Clone(d.entries)
}

// Random returns a random dictionary entry.
func (d *Dictionary) Random() *Entry {
	return d.entries[rand.IntN(len(d.entries))]
}

// Sample returns up to n distinct random entries.
func (d *Dictionary) Sample(n int) []*Entry {
	if n > len(d.entries) {
		n = len(d.entries)
	}
	if n <= 0 {
		return nil
	}
	sample := make([]*Entry, 0, n)
	for _, i := range rand.Perm(len(d.entries))[:n] {
		sample = append(sample, d.entries[i])
	}
	return sample
}
