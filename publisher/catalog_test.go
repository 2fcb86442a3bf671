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
	"net/http"
	"testing"

	"go.chromium.org/luci/common/logging"
	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"
)

func TestListBundles(t *testing.T) {
	t.Parallel()

	const pkg = "com.example.app"

	ftt.Run("With a fake service", t, func(t *ftt.Test) {
		ctx, ml := loggingCtx()
		f := startFakeService(t)
		f.handleOpen(pkg, "edit-1")
		f.handle("DELETE /"+pkg+"/edits/edit-1", func(w http.ResponseWriter, r *http.Request) {})
		c := f.client()

		t.Run("Lists bundles in order inside one open/delete bracket", func(t *ftt.Test) {
			f.handle("GET /"+pkg+"/edits/edit-1/bundles", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]any{
					"bundles": []Bundle{
						{VersionCode: 5, SHA256: "aa"},
						{VersionCode: 6, SHA256: "bb"},
					},
				})
			})

			bundles, err := c.ListBundles(ctx, pkg)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, bundles, should.Resemble([]Bundle{
				{VersionCode: 5, SHA256: "aa"},
				{VersionCode: 6, SHA256: "bb"},
			}))
			assert.Loosely(t, logLines(ml, logging.Info), should.Resemble([]string{
				"Version 5 [aa]",
				"Version 6 [bb]",
			}))
			assert.Loosely(t, f.recorded(), should.Resemble([]string{
				"POST /" + pkg + "/edits",
				"GET /" + pkg + "/edits/edit-1/bundles",
				"DELETE /" + pkg + "/edits/edit-1",
			}))
		})

		t.Run("A fetch failure still deletes the edit", func(t *ftt.Test) {
			f.handle("GET /"+pkg+"/edits/edit-1/bundles", func(w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, http.StatusInternalServerError, "backend exploded")
			})

			_, err := c.ListBundles(ctx, pkg)
			assert.Loosely(t, err, should.ErrLike("backend exploded"))
			assert.Loosely(t, f.count("DELETE "), should.Equal(1))
			assert.Loosely(t, logLines(ml, logging.Info), should.BeEmpty)
		})

		t.Run("An open failure issues no further calls", func(t *ftt.Test) {
			fresh := startFakeService(t)
			fresh.handle("POST /"+pkg+"/edits", func(w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, http.StatusForbidden, "nope")
			})

			_, err := fresh.client().ListBundles(ctx, pkg)
			assert.Loosely(t, err, should.ErrLike("nope"))
			assert.Loosely(t, fresh.recorded(), should.Resemble([]string{
				"POST /" + pkg + "/edits",
			}))
		})
	})
}

func TestListTracks(t *testing.T) {
	t.Parallel()

	const pkg = "com.example.app"

	ftt.Run("With a fake service", t, func(t *ftt.Test) {
		ctx, ml := loggingCtx()
		f := startFakeService(t)
		f.handleOpen(pkg, "edit-1")
		f.handle("DELETE /"+pkg+"/edits/edit-1", func(w http.ResponseWriter, r *http.Request) {})
		c := f.client()

		t.Run("Lists track names", func(t *ftt.Test) {
			f.handle("GET /"+pkg+"/edits/edit-1/tracks", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]any{
					"tracks": []Track{
						{Name: "internal", Releases: []Release{{Status: "draft", VersionCodes: []string{"5"}}}},
						{Name: "production", Releases: []Release{{Status: "completed"}}},
					},
				})
			})

			tracks, err := c.ListTracks(ctx, pkg)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, tracks, should.HaveLength(2))
			assert.Loosely(t, logLines(ml, logging.Info), should.Resemble([]string{
				"Track 'internal'",
				"Track 'production'",
			}))
			assert.Loosely(t, f.recorded(), should.Resemble([]string{
				"POST /" + pkg + "/edits",
				"GET /" + pkg + "/edits/edit-1/tracks",
				"DELETE /" + pkg + "/edits/edit-1",
			}))
		})

		t.Run("A fetch failure still deletes the edit", func(t *ftt.Test) {
			f.handle("GET /"+pkg+"/edits/edit-1/tracks", func(w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, http.StatusNotFound, "no tracks here")
			})

			_, err := c.ListTracks(ctx, pkg)
			assert.Loosely(t, err, should.ErrLike("no tracks here"))
			assert.Loosely(t, f.count("DELETE "), should.Equal(1))
		})
	})
}
