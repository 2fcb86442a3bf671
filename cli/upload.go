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
	"time"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/errors"

	"go.chromium.org/playpub/publisher"
)

func cmdUpload(p Params) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "upload -cred-file <json-file> -package-name <name> -bundle-file <aab-file> -track-name <name> [-timeout <secs>]",
		ShortDesc: "uploads a new bundle",
		LongDesc: `Uploads a new bundle and assigns it to a release track.

The whole operation runs inside a single edit session: the bundle is
uploaded, the track's release list is replaced with a single draft release
containing the new version code, and the edit is committed. If any step
before the commit fails, the edit session is discarded and nothing is
applied.`,
		CommandRun: func() subcommands.CommandRun {
			r := &uploadRun{}
			r.initFlags(p)
			return r
		},
	}
}

type uploadRun struct {
	commandBase

	bundleFile  string
	trackName   string
	timeoutSecs int
}

func (r *uploadRun) initFlags(p Params) {
	r.Flags.StringVar(&r.bundleFile, "bundle-file", "",
		"The bundle `file` to upload; required.")
	r.Flags.StringVar(&r.trackName, "track-name", "",
		"The `name` of the track to add the bundle to; required.")
	r.Flags.IntVar(&r.timeoutSecs, "timeout", 300,
		"The timeout for the upload in `seconds`.")
	r.commandBase.initFlags(p)
}

func (r *uploadRun) parseFlags() error {
	if err := r.commandBase.parseFlags(); err != nil {
		return err
	}
	if r.bundleFile == "" {
		return errors.Reason("must provide -bundle-file").Err()
	}
	if r.trackName == "" {
		return errors.Reason("must provide -track-name").Err()
	}
	if r.timeoutSecs <= 0 {
		return errors.Reason("-timeout must be positive").Err()
	}
	return nil
}

func (r *uploadRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.parseFlags(); err != nil {
		return r.usage(err)
	}
	client, err := r.client(ctx)
	if err != nil {
		return done(ctx, err)
	}
	_, err = client.UploadBundle(ctx, r.packageName, publisher.UploadOptions{
		BundleFile: r.bundleFile,
		TrackName:  r.trackName,
		Timeout:    time.Duration(r.timeoutSecs) * time.Second,
	})
	return done(ctx, err)
}
