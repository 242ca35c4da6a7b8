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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	tbdict "github.com/remrearas/go-tbdict"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrTbdict is a parent error for all command errors.
var ErrTbdict = errors.New("tbdict")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrTbdict)

// ErrNoDataset indicates that no dataset file could be located.
var ErrNoDataset = fmt.Errorf("%w: no dataset found", ErrTbdict)

// datasetFileNames are the dataset file names looked for in the default
// data locations.
var datasetFileNames = []string{
	"tbd_dictionary.json",
	"tbd_dictionary.json.gz",
}

//nolint:gochecknoinits // init needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name
	// argument but we don't use commands.
	//
	// This is done because `tbdict --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// datasetPath resolves the dataset file to load: the --data flag when given,
// otherwise the first dataset file found in the default data locations.
func datasetPath(c *cli.Context) (string, error) {
	if path := c.String("data"); path != "" {
		return path, nil
	}

	for _, dir := range datasetLocations() {
		for _, name := range datasetFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("%w: use --data or place %s in a data directory", ErrNoDataset, datasetFileNames[0])
}

func openDictionary(c *cli.Context) (*tbdict.Dictionary, error) {
	path, err := datasetPath(c)
	if err != nil {
		return nil, err
	}

	//nolint:wrapcheck // error is user-facing as is.
	return tbdict.Open(path)
}

func newTbdictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search the TBD English-Turkish informatics terms dictionary.",
		Description: strings.Join([]string{
			"TBD Bilişim Terimleri Sözlüğü search utility written in Go.",
			"http://github.com/remrearas/go-tbdict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Usage:   "load the dataset from `FILE`",
				Aliases: []string{"d"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       "2025 Rıza Emre ARAS",
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			queryCommand,
			infoCommand,
			randomCommand,
			extractCommand,
		},
	}
}
