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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	tbdict "github.com/remrearas/go-tbdict"
	"github.com/remrearas/go-tbdict/export"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Search the dictionary",
	ArgsUsage: "QUERY",
	Description: "Search dictionary terms by exact, partial, or fuzzy matching.\n" +
		"Results are ranked best match first.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "mode",
			Usage:   "match `MODE`: exact, partial, or fuzzy",
			Aliases: []string{"m"},
			Value:   string(tbdict.ModeFuzzy),
		},
		&cli.StringFlag{
			Name:    "direction",
			Usage:   "search `DIRECTION`: en, tr, or both",
			Aliases: []string{"l"},
			Value:   string(tbdict.DirectionBoth),
		},
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "return at most `N` results (0 for all)",
			Aliases: []string{"n"},
			Value:   10,
		},
		&cli.Float64Flag{
			Name:  "min-score",
			Usage: "minimum fuzzy similarity `SCORE` on a 0-1 scale",
			Value: 0.6,
		},
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output `FORMAT`: table, json, csv, or txt",
			Aliases: []string{"f"},
			Value:   "table",
		},
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write results to `FILE` instead of stdout",
			Aliases: []string{"o"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected exactly one query argument", ErrFlagParse)
		}

		d, err := openDictionary(c)
		if err != nil {
			return err
		}

		results, err := d.Search(c.Args().Get(0), &tbdict.SearchOptions{
			Mode:          tbdict.Mode(c.String("mode")),
			Direction:     tbdict.Direction(c.String("direction")),
			Limit:         c.Int("limit"),
			MinSimilarity: c.Float64("min-score"),
		})
		if err != nil {
			//nolint:wrapcheck // error is user-facing as is.
			return err
		}

		w := io.Writer(c.App.Writer)
		if output := c.String("output"); output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %q: %w", output, err)
			}
			defer f.Close()
			w = f
		}

		switch format := c.String("format"); format {
		case "table":
			renderTable(w, results)
			return nil
		case "json":
			//nolint:wrapcheck // error is user-facing as is.
			return export.JSON(w, results)
		case "csv":
			//nolint:wrapcheck // error is user-facing as is.
			return export.CSV(w, results)
		case "txt":
			//nolint:wrapcheck // error is user-facing as is.
			return export.Text(w, results)
		default:
			return fmt.Errorf("%w: unknown format %q", ErrFlagParse, format)
		}
	},
}

func renderTable(w io.Writer, results []*tbdict.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	numberFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("#", "English", "Turkish", "Score").
		WithWriter(w).
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(numberFmt)
	for i, r := range results {
		tbl.AddRow(i+1, r.Entry.EN, r.Entry.TR, fmt.Sprintf("%.2f", r.Score))
	}
	tbl.Print()
}
