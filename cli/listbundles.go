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

func cmdListBundles(p Params) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "list-bundles -cred-file <json-file> -package-name <name>",
		ShortDesc: "lists uploaded bundle versions",
		LongDesc: `Lists uploaded bundle versions.

Prints one line per bundle with its version code and SHA-256 digest, in the
order the service returns them.`,
		CommandRun: func() subcommands.CommandRun {
			r := &listBundlesRun{}
			r.initFlags(p)
			return r
		},
	}
}

type listBundlesRun struct {
	commandBase
}

func (r *listBundlesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.parseFlags(); err != nil {
		return r.usage(err)
	}
	client, err := r.client(ctx)
	if err != nil {
		return done(ctx, err)
	}
	_, err = client.ListBundles(ctx, r.packageName)
	return done(ctx, err)
}
