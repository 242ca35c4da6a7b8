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

// Package testutil provides test dataset fixtures.
package testutil

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
)

// MakeDataset builds a dataset document from (en, tr) pairs.
func MakeDataset(source, version string, pairs [][2]string) []byte {
	terms := make([]map[string]string, 0, len(pairs))
	for _, p := range pairs {
		terms = append(terms, map[string]string{"en": p[0], "tr": p[1]})
	}

	doc := map[string]any{
		"metadata": map[string]any{
			"source":      source,
			"total_terms": len(terms),
			"version":     version,
		},
		"terms": terms,
	}

	b, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("marshaling test dataset: %v", err))
	}
	return b
}

// MakeDatasetGZ builds a gzip-compressed dataset document.
func MakeDatasetGZ(source, version string, pairs [][2]string) []byte {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(MakeDataset(source, version, pairs)); err != nil {
		panic(fmt.Sprintf("compressing test dataset: %v", err))
	}
	if err := gz.Close(); err != nil {
		panic(fmt.Sprintf("compressing test dataset: %v", err))
	}
	return buf.Bytes()
}
