// Copyright 2023, the granule-broker authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var commands = cli.Commands{
	cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Launch the granule-broker webserver",
		Action:  serveAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the Broker CLI",
		Action:  versionAction,
	},
	cli.Command{
		Name:    "ingest",
		Aliases: []string{"i"},
		Usage:   "Update the local index with granules from the CMR catalog",
		Action:  ingestAction,
		Flags: []cli.Flag{
			cli.StringFlag{Name: "concept-id", Usage: "Collection concept id to ingest"},
			cli.StringFlag{Name: "short-name", Usage: "Collection short name to ingest"},
			cli.StringFlag{Name: "provider", Usage: "CMR provider id to ingest from"},
			cli.IntFlag{Name: "page-size", Usage: "Maximum number of granules to ingest", Value: 2000},
		},
	},
	cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Update database schema",
		Action:  migrateDatabaseAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "granule-broker"
	app.Usage = "Launch a granule-broker process"
	app.Commands = commands
	return
}
