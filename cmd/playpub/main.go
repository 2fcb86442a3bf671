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

// Command playpub is a CLI client for the Google Play Android Publisher API.
//
// It hardcodes the production Android Publisher endpoints and OAuth scope.
// See go.chromium.org/playpub/cli if you want to build your own version with
// different defaults.
package main

import (
	"os"

	"go.chromium.org/playpub/cli"
)

func main() {
	os.Exit(cli.Main(cli.Params{
		EditURL:    "https://androidpublisher.googleapis.com/androidpublisher/v3/applications",
		UploadURL:  "https://androidpublisher.googleapis.com/upload/androidpublisher/v3/applications",
		AuthScopes: []string{"https://www.googleapis.com/auth/androidpublisher"},
	}, os.Args[1:]))
}
