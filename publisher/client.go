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

// Package publisher implements a client for the Google Play Android Publisher
// v3 API edit workflow.
//
// All mutating calls happen inside a server-side edit session which is
// explicitly opened and then either committed or deleted. UploadBundle is the
// only multi-step operation: it behaves as an all-or-nothing transaction,
// discarding the edit session if any intermediate step fails.
//
// The client performs no retries. Callers that want retries should wrap
// individual operations, keeping in mind that a failed commit leaves the fate
// of the edit session unknown.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"
)

// Client talks to the Android Publisher API on behalf of one package.
//
// The zero value is not usable: EditURL, UploadURL and AccessToken must be
// populated. All exported methods are safe for sequential use only; the
// client never issues concurrent requests.
type Client struct {
	// EditURL is the base URL of the edit/management API, e.g.
	// "https://androidpublisher.googleapis.com/androidpublisher/v3/applications".
	EditURL string

	// UploadURL is the base URL of the media upload host, e.g.
	// "https://androidpublisher.googleapis.com/upload/androidpublisher/v3/applications".
	UploadURL string

	// AccessToken is the bearer token attached to every request.
	AccessToken string

	// UserAgent, if set, is sent as the User-Agent header.
	UserAgent string

	// HTTP is the underlying HTTP client. Defaults to http.DefaultClient.
	HTTP *http.Client
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// send issues a single HTTP request with bearer authentication.
func (c *Client) send(ctx context.Context, method, url string, body io.Reader, hdr http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Annotate(err, "failed to create %s request to %s", method, url).Err()
	}
	for k, vs := range hdr {
		req.Header[k] = append(req.Header[k], vs...)
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	logging.Debugf(ctx, "playpub: %s %s", method, url)
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, errors.Annotate(err, "%s %s", method, url).Tag(TransportError).Err()
	}
	return resp, nil
}

// doJSON sends a request and decodes a successful response body into out.
//
// On a success status the body is unmarshaled into out, failing with a
// DecodeError-tagged error if it doesn't parse. On any other status the error
// is produced by apiError.
func (c *Client) doJSON(ctx context.Context, method, url string, body io.Reader, hdr http.Header, out any) error {
	resp, err := c.send(ctx, method, url, body, hdr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Annotate(err, "reading response of %s %s", method, url).Tag(TransportError).Err()
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.Unmarshal(blob, out); err != nil {
			return errors.Annotate(err, "unexpected response of %s %s", method, url).Tag(DecodeError).Err()
		}
		return nil
	}
	return apiError(resp, blob)
}

// doEmpty sends a request whose success response carries no meaningful body.
//
// Success is determined solely by the HTTP status; the body of a successful
// response is ignored entirely.
func (c *Client) doEmpty(ctx context.Context, method, url string, body io.Reader, hdr http.Header) error {
	resp, err := c.send(ctx, method, url, body, hdr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Annotate(err, "reading response of %s %s", method, url).Tag(TransportError).Err()
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return apiError(resp, blob)
}

// apiError converts a non-success response into an error.
//
// If the body is an `{"error": {"message": ...}}` envelope, the returned
// error message is exactly the embedded message, otherwise it is the bare
// HTTP status.
func apiError(resp *http.Response, blob []byte) error {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(blob, &envelope); err == nil && envelope.Error.Message != "" {
		return errors.Reason("%s", envelope.Error.Message).Tag(RemoteAPIError).Err()
	}
	return errors.Reason("%s", resp.Status).Tag(RemoteAPIError).Err()
}

// editsURL builds a URL under the per-package edits collection.
func (c *Client) editsURL(pkg string, elems ...string) string {
	out := fmt.Sprintf("%s/%s/edits", c.EditURL, url.PathEscape(pkg))
	for _, e := range elems {
		out += "/" + e
	}
	return out
}
