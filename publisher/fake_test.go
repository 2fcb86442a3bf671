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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.chromium.org/luci/common/logging"
	"go.chromium.org/luci/common/logging/memlogger"
)

// fakeService is an in-process publisher service recording every call it
// receives as "METHOD /path".
type fakeService struct {
	URL string

	mu    sync.Mutex
	calls []string
	mux   *http.ServeMux
}

func startFakeService(t testing.TB) *fakeService {
	f := &fakeService{mux: http.NewServeMux()}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls = append(f.calls, r.Method+" "+r.URL.Path)
		f.mu.Unlock()
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	f.URL = srv.URL
	return f
}

func (f *fakeService) handle(pattern string, h http.HandlerFunc) {
	f.mux.HandleFunc(pattern, h)
}

// handleOpen registers a default open-edit handler assigning the given ID.
func (f *fakeService) handleOpen(pkg, editID string) {
	f.handle("POST /"+pkg+"/edits", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"id": editID})
	})
}

func (f *fakeService) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// count returns how many recorded calls start with the given prefix.
func (f *fakeService) count(prefix string) int {
	n := 0
	for _, c := range f.recorded() {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeService) client() *Client {
	return &Client{
		EditURL:     f.URL,
		UploadURL:   f.URL,
		AccessToken: "fake-token",
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"message": msg},
	})
}

// loggingCtx returns a context with an in-memory logger to assert on.
func loggingCtx() (context.Context, *memlogger.MemLogger) {
	ctx := memlogger.Use(context.Background())
	return ctx, logging.Get(ctx).(*memlogger.MemLogger)
}

func logLines(ml *memlogger.MemLogger, level logging.Level) []string {
	var out []string
	for _, m := range ml.Messages() {
		if m.Level == level {
			out = append(out, m.Msg)
		}
	}
	return out
}
