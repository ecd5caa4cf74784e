// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

package handler

import "errors"

// ErrCreatingHandlers is returned by NewHandlers when a transport handler
// cannot be initialized, e.g. because the configured token hash is not a
// bcrypt hash. This is treated as a fatal misconfiguration at startup.
var ErrCreatingHandlers = errors.New("cannot create handlers")
