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
	"net/http"
	"strings"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"
)

var jsonHeader = http.Header{"Content-Type": {"application/json"}}

// OpenEdit opens a new server-side edit session for the package and returns
// its identifier.
//
// Every opened edit must eventually be passed to either CommitEdit or
// DeleteEdit (never both), or it leaks on the service until it expires.
func (c *Client) OpenEdit(ctx context.Context, pkg string) (string, error) {
	var reply struct {
		ID string `json:"id"`
	}
	err := c.doJSON(ctx, "POST", c.editsURL(pkg), strings.NewReader("{}"), jsonHeader, &reply)
	if err != nil {
		return "", errors.Annotate(err, "opening edit for %q", pkg).Err()
	}
	return reply.ID, nil
}

// CommitEdit durably applies all mutations performed under the edit session.
//
// A failed commit leaves the fate of the session unknown: the service may or
// may not have applied (or discarded) the edit already. Callers must not
// retry the commit or attempt to delete the session afterwards.
func (c *Client) CommitEdit(ctx context.Context, pkg, editID string) error {
	err := c.doEmpty(ctx, "POST", c.editsURL(pkg, editID+":commit"), nil, nil)
	if err != nil {
		return errors.Annotate(err, "committing edit %s", editID).Err()
	}
	return nil
}

// DeleteEdit discards all mutations performed under the edit session.
func (c *Client) DeleteEdit(ctx context.Context, pkg, editID string) error {
	err := c.doEmpty(ctx, "DELETE", c.editsURL(pkg, editID), nil, nil)
	if err != nil {
		return errors.Annotate(err, "deleting edit %s", editID).Err()
	}
	return nil
}

// discardEdit deletes the edit session as compensation after a failure.
//
// A failed delete is only logged: it must never mask the error that
// triggered the rollback.
func (c *Client) discardEdit(ctx context.Context, pkg, editID string) {
	if err := c.DeleteEdit(ctx, pkg, editID); err != nil {
		logging.Warningf(ctx, "Failed to discard edit %s: %s", editID, err)
	}
}
