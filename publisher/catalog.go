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

import (
	"context"

	"go.chromium.org/luci/common/logging"
)

// ListBundles lists the bundles uploaded for the package, logging one line
// per bundle in the order the service returned them.
//
// The listing is only exposed by the service through an edit session, so the
// call opens a throwaway session and deletes it when done. The delete is
// attempted even if the fetch failed; a fetch error takes precedence over
// any cleanup error.
func (c *Client) ListBundles(ctx context.Context, pkg string) ([]Bundle, error) {
	editID, err := c.OpenEdit(ctx, pkg)
	if err != nil {
		return nil, err
	}
	var reply struct {
		Bundles []Bundle `json:"bundles"`
	}
	if err := c.doJSON(ctx, "GET", c.editsURL(pkg, editID, "bundles"), nil, nil, &reply); err != nil {
		c.discardEdit(ctx, pkg, editID)
		return nil, err
	}
	for _, b := range reply.Bundles {
		logging.Infof(ctx, "Version %d [%s]", b.VersionCode, b.SHA256)
	}
	if err := c.DeleteEdit(ctx, pkg, editID); err != nil {
		return nil, err
	}
	return reply.Bundles, nil
}

// ListTracks lists the distribution tracks of the package, logging one line
// per track name. Same edit session bracketing as ListBundles.
func (c *Client) ListTracks(ctx context.Context, pkg string) ([]Track, error) {
	editID, err := c.OpenEdit(ctx, pkg)
	if err != nil {
		return nil, err
	}
	var reply struct {
		Tracks []Track `json:"tracks"`
	}
	if err := c.doJSON(ctx, "GET", c.editsURL(pkg, editID, "tracks"), nil, nil, &reply); err != nil {
		c.discardEdit(ctx, pkg, editID)
		return nil, err
	}
	for _, t := range reply.Tracks {
		logging.Infof(ctx, "Track '%s'", t.Name)
	}
	if err := c.DeleteEdit(ctx, pkg, editID); err != nil {
		return nil, err
	}
	return reply.Tracks, nil
}
