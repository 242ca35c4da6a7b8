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

// Package extract converts text dumps of the source dictionary document
// into the dataset format consumed by tbdict.
//
// The source document lists one term pair per line with the English and
// Turkish terms separated by " : ". Header lines, page furniture, and
// malformed records are skipped. HTML dumps are flattened to plain text
// before line parsing.
package extract

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/k3a/html2text"

	tbdict "github.com/remrearas/go-tbdict"
)

// separator splits the English and Turkish sides of a record line.
const separator = " : "

// Options are options for dataset extraction.
type Options struct {
	// Source is the metadata source label written to the dataset.
	Source string

	// Version is the date-like dataset version written to the metadata.
	Version string

	// MaxFieldLen is the maximum rune length of either field of a record.
	// Longer records are parse artifacts and are skipped. Zero means
	// DefaultOptions.MaxFieldLen.
	MaxFieldLen int

	// HTML indicates the input is an HTML document that should be
	// flattened to plain text before line parsing.
	HTML bool
}

// DefaultOptions is the default options for extraction.
var DefaultOptions = &Options{
	Source:      "TBD Bilişim Terimleri Sözlüğü",
	MaxFieldLen: 200,
}

// Extract parses term pairs from the source document in r.
func Extract(r io.Reader, options *Options) ([]*tbdict.Entry, error) {
	opts := *DefaultOptions
	if options != nil {
		opts = *options
		if opts.MaxFieldLen == 0 {
			opts.MaxFieldLen = DefaultOptions.MaxFieldLen
		}
	}

	if opts.HTML {
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading document: %w", err)
		}
		r = strings.NewReader(html2text.HTML2Text(string(raw)))
	}

	var entries []*tbdict.Entry
	s := bufio.NewScanner(r)
	for s.Scan() {
		if e := parseLine(s.Text(), opts.MaxFieldLen); e != nil {
			entries = append(entries, e)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	return entries, nil
}

// parseLine parses a single record line. It returns nil for header lines
// and anything else that is not a well-formed term pair.
func parseLine(line string, maxFieldLen int) *tbdict.Entry {
	if !strings.Contains(line, separator) {
		return nil
	}
	// Lines with more than two colons are headers or tables of contents,
	// not records.
	if strings.Count(line, ":") > 2 {
		return nil
	}

	parts := strings.SplitN(line, separator, 2)
	english := strings.TrimSpace(parts[0])
	turkish := strings.TrimSpace(parts[1])
	if english == "" || turkish == "" {
		return nil
	}
	if utf8.RuneCountInString(english) >= maxFieldLen || utf8.RuneCountInString(turkish) >= maxFieldLen {
		return nil
	}

	return &tbdict.Entry{EN: english, TR: turkish}
}

// dataset is the written dataset document shape.
type dataset struct {
	Metadata tbdict.Metadata `json:"metadata"`
	Terms    []*tbdict.Entry `json:"terms"`
}

// WriteDataset writes entries to w as a dataset document readable by
// [tbdict.New].
func WriteDataset(w io.Writer, entries []*tbdict.Entry, options *Options) error {
	opts := *DefaultOptions
	if options != nil {
		opts = *options
		if opts.Source == "" {
			opts.Source = DefaultOptions.Source
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	err := enc.Encode(dataset{
		Metadata: tbdict.Metadata{
			Source:     opts.Source,
			TotalTerms: len(entries),
			Version:    opts.Version,
		},
		Terms: entries,
	})
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	return nil
}
