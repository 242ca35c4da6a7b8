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

package extract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	tbdict "github.com/remrearas/go-tbdict"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		options  *Options
		expected []*tbdict.Entry
	}{
		{
			name: "term pairs",
			input: strings.Join([]string{
				"cloud : bulut",
				"database : veri tabanı",
				"artificial intelligence : yapay zeka",
			}, "\n"),
			expected: []*tbdict.Entry{
				{EN: "cloud", TR: "bulut"},
				{EN: "database", TR: "veri tabanı"},
				{EN: "artificial intelligence", TR: "yapay zeka"},
			},
		},
		{
			name: "skips page furniture",
			input: strings.Join([]string{
				"English : Türkçe : Symbols : Numbers",
				"TBD Bilişim Terimleri Sözlüğü",
				"",
				"cloud : bulut",
				"-- A --",
			}, "\n"),
			expected: []*tbdict.Entry{
				{EN: "cloud", TR: "bulut"},
			},
		},
		{
			name: "skips records with empty sides",
			input: strings.Join([]string{
				" : bulut",
				"cloud :  ",
				"data : veri",
			}, "\n"),
			expected: []*tbdict.Entry{
				{EN: "data", TR: "veri"},
			},
		},
		{
			name:    "skips overlong fields",
			input:   "cloud : " + strings.Repeat("x", 250) + "\ndata : veri",
			options: &Options{MaxFieldLen: 200},
			expected: []*tbdict.Entry{
				{EN: "data", TR: "veri"},
			},
		},
		{
			name:    "html input",
			input:   "<html><body><p>cloud : bulut</p><p>data : veri</p></body></html>",
			options: &Options{HTML: true},
			expected: []*tbdict.Entry{
				{EN: "cloud", TR: "bulut"},
				{EN: "data", TR: "veri"},
			},
		},
		{
			name:     "no records",
			input:    "nothing to see here",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			entries, err := Extract(strings.NewReader(test.input), test.options)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if diff := cmp.Diff(test.expected, entries); diff != "" {
				t.Fatalf("Extract (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestWriteDataset_roundTrip(t *testing.T) {
	t.Parallel()

	entries := []*tbdict.Entry{
		{EN: "cloud", TR: "bulut"},
		{EN: "database", TR: "veri tabanı"},
	}

	var buf bytes.Buffer
	err := WriteDataset(&buf, entries, &Options{
		Source:  "TBD Bilişim Terimleri Sözlüğü",
		Version: "2025-08-04",
	})
	if err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}

	d, err := tbdict.New(&buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if want, got := "TBD Bilişim Terimleri Sözlüğü", d.Source(); want != got {
		t.Errorf("Source; want: %q, got: %q", want, got)
	}
	if want, got := "2025-08-04", d.Version(); want != got {
		t.Errorf("Version; want: %q, got: %q", want, got)
	}
	if want, got := len(entries), d.TotalTerms(); want != got {
		t.Errorf("TotalTerms; want: %d, got: %d", want, got)
	}
	if diff := cmp.Diff(entries, d.Entries()); diff != "" {
		t.Fatalf("Entries (-want, +got):\n%s", diff)
	}
}
