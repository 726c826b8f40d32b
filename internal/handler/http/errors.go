// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoTokenProvided is returned by the auth middleware when the
	// "Authorization" header is missing or does not start with "Bearer ".
	ErrNoTokenProvided = errors.New("no token provided")

	// ErrInvalidJSON wraps the decoder error of a malformed request body.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	ErrInvalidGzipBody = errors.New("invalid gzip data")

	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)
