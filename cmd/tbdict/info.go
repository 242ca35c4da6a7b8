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

var infoCommand = &cli.Command{
	Name:        "info",
	Usage:       "Show dataset information",
	Description: "Show the loaded dataset's metadata.",
	Action: func(c *cli.Context) error {
		d, err := openDictionary(c)
		if err != nil {
			return err
		}

		fmt.Fprintf(c.App.Writer, "Source:      %s\n", d.Source())
		fmt.Fprintf(c.App.Writer, "Version:     %s\n", d.Version())
		fmt.Fprintf(c.App.Writer, "Term Count:  %d\n", d.Len())

		return nil
	},
}
