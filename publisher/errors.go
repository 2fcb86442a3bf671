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
	"go.chromium.org/luci/common/errors/errtag"
)

// TransportError is an error tag indicating the HTTP request never produced
// a usable response (connection failure, canceled or timed out request, or
// a failure reading the response body).
var TransportError = errtag.Make("the HTTP request could not be completed", true)

// DecodeError is an error tag indicating the service replied with a success
// status, but the response body did not match the expected shape.
var DecodeError = errtag.Make("the response body did not match the expected shape", true)

// RemoteAPIError is an error tag indicating the service replied with a
// non-success status. The error message is the server-provided message when
// the body carries one, otherwise the bare HTTP status.
var RemoteAPIError = errtag.Make("the service returned an error response", true)

// LocalIOError is an error tag indicating a local file could not be read.
var LocalIOError = errtag.Make("reading a local file failed", true)
