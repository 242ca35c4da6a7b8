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
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/remrearas/go-tbdict/extract"
)

var extractCommand = &cli.Command{
	Name:      "extract",
	Usage:     "Convert a source document dump into a dataset",
	ArgsUsage: "SRC",
	Description: "Parse \" : \" separated term pairs from a text or HTML dump\n" +
		"of the source dictionary document and write a dataset file.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write the dataset to `FILE`",
			Aliases: []string{"o"},
			Value:   "tbd_dictionary.json",
		},
		&cli.BoolFlag{
			Name:  "html",
			Usage: "treat the source document as HTML",
		},
		&cli.StringFlag{
			Name:  "source",
			Usage: "dataset source `LABEL`",
		},
		&cli.StringFlag{
			Name:  "dataset-version",
			Usage: "dataset version `DATE` (yyyy-mm-dd)",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected exactly one source argument", ErrFlagParse)
		}
		src := c.Args().Get(0)

		f, err := os.Open(src)
		if err != nil {
			return fmt.Errorf("opening %q: %w", src, err)
		}
		defer f.Close()

		opts := &extract.Options{
			Source:  c.String("source"),
			Version: c.String("dataset-version"),
			HTML:    c.Bool("html") || strings.HasSuffix(strings.ToLower(src), ".html"),
		}
		if opts.Source == "" {
			opts.Source = extract.DefaultOptions.Source
		}

		entries, err := extract.Extract(f, opts)
		if err != nil {
			//nolint:wrapcheck // error is user-facing as is.
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("%w: no term pairs found in %q", ErrTbdict, src)
		}

		output := c.String("output")
		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %q: %w", output, err)
		}
		defer out.Close()

		if err := extract.WriteDataset(out, entries, opts); err != nil {
			//nolint:wrapcheck // error is user-facing as is.
			return err
		}

		fmt.Fprintf(c.App.Writer, "Extracted %d terms to %s\n", len(entries), output)
		return nil
	},
}
