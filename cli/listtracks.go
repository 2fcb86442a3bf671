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

package cli

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"
)

func cmdListTracks(p Params) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "list-tracks -cred-file <json-file> -package-name <name>",
		ShortDesc: "lists available release tracks",
		LongDesc:  "Lists available release tracks, one line per track name.",
		CommandRun: func() subcommands.CommandRun {
			r := &listTracksRun{}
			r.initFlags(p)
			return r
		},
	}
}

type listTracksRun struct {
	commandBase
}

func (r *listTracksRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.parseFlags(); err != nil {
		return r.usage(err)
	}
	client, err := r.client(ctx)
	if err != nil {
		return done(ctx, err)
	}
	_, err = client.ListTracks(ctx, r.packageName)
	return done(ctx, err)
}
