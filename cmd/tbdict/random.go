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

	"github.com/urfave/cli/v2"
)

var randomCommand = &cli.Command{
	Name:        "random",
	Usage:       "Show random dictionary entries",
	Description: "Pick random term pairs from the dictionary.",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Usage:   "number of entries to show",
			Aliases: []string{"n"},
			Value:   1,
		},
	},
	Action: func(c *cli.Context) error {
		d, err := openDictionary(c)
		if err != nil {
			return err
		}

		for _, e := range d.Sample(c.Int("count")) {
			fmt.Fprintln(c.App.Writer, e)
		}

		return nil
	},
}
