// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the playpub command line tool.
//
// See cmd/playpub for the executable that wires in the production Android
// Publisher endpoints.
package cli

import (
	"context"
	"os"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/flag/fixflagpos"
	"go.chromium.org/luci/common/logging/gologger"
)

// Params is the parameters for the playpub CLI.
type Params struct {
	// EditURL is the base URL of the Android Publisher edit API.
	EditURL string
	// UploadURL is the base URL of the Android Publisher media upload host.
	UploadURL string
	// AuthScopes are the OAuth scopes requested for the bearer token.
	AuthScopes []string
}

var logCfg = gologger.LoggerConfig{
	Out: os.Stderr,
}

// application creates the application and configures its subcommands.
func application(p Params) *cli.Application {
	return &cli.Application{
		Name:  "playpub",
		Title: "A CLI client for the Google Play Android Publisher API.",
		Context: func(ctx context.Context) context.Context {
			return logCfg.Use(ctx)
		},
		Commands: []*subcommands.Command{
			cmdListBundles(p),
			cmdListTracks(p),
			cmdUpload(p),

			{}, // a separator
			subcommands.CmdHelp,
		},
	}
}

// Main is the main function of the playpub application.
func Main(p Params, args []string) int {
	return subcommands.Run(application(p), fixflagpos.FixSubcommands(args))
}
