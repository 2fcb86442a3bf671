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
	"context"
	"fmt"
	"os"
	"time"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/auth"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"go.chromium.org/playpub/publisher"
)

const userAgent = "playpub CLI"

// commandBase carries the flags and collaborators shared by all subcommands.
type commandBase struct {
	subcommands.CommandRunBase

	params      Params
	credFile    string
	packageName string
}

func (c *commandBase) initFlags(p Params) {
	c.params = p
	c.Flags.StringVar(&c.credFile, "cred-file", "",
		"Google API service account credentials JSON `file`; required.")
	c.Flags.StringVar(&c.packageName, "package-name", "",
		"Google Play package `name`; required.")
}

// parseFlags validates the common flags.
func (c *commandBase) parseFlags() error {
	if c.credFile == "" {
		return errors.Reason("must provide -cred-file").Err()
	}
	if c.packageName == "" {
		return errors.Reason("must provide -package-name").Err()
	}
	return nil
}

// usage prints the flag error together with the command's usage text.
//
// Usage errors short-circuit with exit code 0, same as -help: they are not
// operational failures.
func (c *commandBase) usage(err error) int {
	fmt.Fprintln(os.Stderr, err)
	c.GetFlags().PrintDefaults()
	return 0
}

// client resolves the bearer token and constructs the publisher client.
//
// The token is fetched once per invocation; individual requests never refresh
// it.
func (c *commandBase) client(ctx context.Context) (*publisher.Client, error) {
	logging.Infof(ctx, "Requesting OAuth token with Android Publisher scope")
	authn := auth.NewAuthenticator(ctx, auth.SilentLogin, auth.Options{
		Method:                 auth.ServiceAccountMethod,
		ServiceAccountJSONPath: c.credFile,
		Scopes:                 c.params.AuthScopes,
	})
	tok, err := authn.GetAccessToken(time.Minute)
	if err != nil {
		return nil, errors.Annotate(err, "failed to obtain access token").Err()
	}
	return &publisher.Client{
		EditURL:     c.params.EditURL,
		UploadURL:   c.params.UploadURL,
		AccessToken: tok.AccessToken,
		UserAgent:   userAgent,
	}, nil
}

// done logs the error (if any) and converts it to a process exit code.
func done(ctx context.Context, err error) int {
	if err != nil {
		logging.Errorf(ctx, "%s", err)
		return 1
	}
	return 0
}
