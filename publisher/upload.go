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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"go.chromium.org/luci/common/clock"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"
)

// DefaultUploadTimeout bounds the upload POST when UploadOptions.Timeout is
// not set.
const DefaultUploadTimeout = 300 * time.Second

// UploadOptions are parameters of UploadBundle.
type UploadOptions struct {
	// BundleFile is the path to the bundle binary to upload.
	BundleFile string

	// TrackName is the track to put the uploaded bundle on. The track's
	// release list is replaced with a single draft release containing just
	// the new version code.
	TrackName string

	// Timeout bounds the upload POST only; all other calls run on whatever
	// limits the underlying transport has. Defaults to DefaultUploadTimeout.
	Timeout time.Duration
}

// UploadBundle uploads a bundle and assigns it to a track as one
// all-or-nothing operation.
//
// The sequence is: open an edit session, upload the binary, replace the
// track's release with a draft release of the new version, commit. If the
// upload or the track assignment fails, the session is deleted (best effort)
// and the original error is returned. A commit failure is returned as is,
// with no delete attempt: at that point a delete could not safely discard
// the edit anymore.
func (c *Client) UploadBundle(ctx context.Context, pkg string, opts UploadOptions) (Bundle, error) {
	editID, err := c.OpenEdit(ctx, pkg)
	if err != nil {
		return Bundle{}, err
	}
	bundle, err := c.uploadToEdit(ctx, pkg, editID, opts)
	if err != nil {
		c.discardEdit(ctx, pkg, editID)
		return Bundle{}, err
	}
	logging.Infof(ctx, "Committing upload")
	if err := c.CommitEdit(ctx, pkg, editID); err != nil {
		return Bundle{}, err
	}
	return bundle, nil
}

// uploadToEdit performs the upload and track assignment steps inside an
// already opened edit session. Any error it returns means the caller must
// roll the session back.
func (c *Client) uploadToEdit(ctx context.Context, pkg, editID string, opts UploadOptions) (Bundle, error) {
	blob, err := os.ReadFile(opts.BundleFile)
	if err != nil {
		return Bundle{}, errors.Annotate(err, "unable to read bundle file").Tag(LocalIOError).Err()
	}
	logging.Infof(ctx, "Read bundle file '%s' (%d bytes), uploading...", opts.BundleFile, len(blob))

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultUploadTimeout
	}
	uploadCtx, cancel := clock.WithTimeout(ctx, timeout)
	defer cancel()

	var bundle Bundle
	uploadURL := c.UploadURL + "/" + url.PathEscape(pkg) + "/edits/" + editID + "/bundles?uploadType=media"
	hdr := http.Header{"Content-Type": {"application/octet-stream"}}
	if err := c.doJSON(uploadCtx, "POST", uploadURL, bytes.NewReader(blob), hdr, &bundle); err != nil {
		return Bundle{}, err
	}
	logging.Infof(ctx, "Version %d [%s] uploaded", bundle.VersionCode, bundle.SHA256)

	track := Track{
		Name: opts.TrackName,
		Releases: []Release{
			{
				Status:       "draft",
				VersionCodes: []string{strconv.Itoa(bundle.VersionCode)},
			},
		},
	}
	body, err := json.Marshal(&track)
	if err != nil {
		return Bundle{}, errors.Annotate(err, "marshaling track %q", opts.TrackName).Err()
	}
	var updated Track
	trackURL := c.editsURL(pkg, editID, "tracks", url.PathEscape(opts.TrackName))
	if err := c.doJSON(ctx, "PUT", trackURL, bytes.NewReader(body), jsonHeader, &updated); err != nil {
		return Bundle{}, err
	}
	return bundle, nil
}
