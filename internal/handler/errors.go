// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration has no HTTP address. This is a fatal misconfiguration
	// and makes the application fail at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	errNoServicesProvided = errors.New("no services provided")
)
