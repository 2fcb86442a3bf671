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

package publisher

// Bundle describes one uploaded app bundle artifact.
type Bundle struct {
	// VersionCode is the version code of the bundle as extracted by the
	// service from the uploaded binary.
	VersionCode int `json:"versionCode"`
	// SHA256 is the hex digest of the bundle contents.
	SHA256 string `json:"sha256"`
}

// Release is one release entry on a track.
type Release struct {
	// Status is one of "draft", "inProgress", "halted" or "completed".
	Status string `json:"status"`
	// VersionCodes lists the version codes included in the release, as
	// decimal strings. May be absent for releases with no versions yet.
	VersionCodes []string `json:"versionCodes,omitempty"`
}

// Track is a named distribution track with its releases.
type Track struct {
	Name     string    `json:"track"`
	Releases []Release `json:"releases"`
}
