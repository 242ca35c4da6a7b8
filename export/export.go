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

// Package export renders search results into flat serializations. Each
// format is a direct, lossless transcription of the result sequence.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	tbdict "github.com/remrearas/go-tbdict"
)

// Record is a single exported search result.
type Record struct {
	EN    string  `json:"en"`
	TR    string  `json:"tr"`
	Score float64 `json:"score"`
}

// Records converts search results to export records in order.
func Records(results []*tbdict.Result) []Record {
	records := make([]Record, 0, len(results))
	for _, r := range results {
		records = append(records, Record{
			EN:    r.Entry.EN,
			TR:    r.Entry.TR,
			Score: r.Score,
		})
	}
	return records
}

// JSON writes results as a JSON array of {en, tr, score} objects.
func JSON(w io.Writer, results []*tbdict.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Records(results)); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}

// CSV writes results as a delimited table with an "en,tr,score" header row.
// Scores are written in the shortest decimal form that survives a
// parse round trip.
func CSV(w io.Writer, results []*tbdict.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"en", "tr", "score"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Entry.EN,
			r.Entry.TR,
			strconv.FormatFloat(r.Score, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}

// ParseCSV reads a delimited table produced by CSV back into records.
func ParseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 3 {
			return nil, fmt.Errorf("row %d: expected 3 fields, got %d", i+1, len(row))
		}
		score, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing score: %w", i+1, err)
		}
		records = append(records, Record{EN: row[0], TR: row[1], Score: score})
	}
	return records, nil
}

// Text writes results as one "en -> tr (score)" line per result.
func Text(w io.Writer, results []*tbdict.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s -> %s (%.2f)\n", r.Entry.EN, r.Entry.TR, r.Score); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}
