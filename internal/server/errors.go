// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

package server

import "errors"

var (
	ErrNoHandler = errors.New("no http handler is created")
	ErrListen    = errors.New("cannot listen on configured address")
)
