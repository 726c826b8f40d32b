// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the explicit schema checks applied before a
// record is written.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationErrors: the typed result of a failed validation, carrying one
//     FieldError per violated constraint.
//
// Validators do not modify their input; normalization (trimming, casing,
// defaults) is done by the models before validation.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	// It returns nil, a [ValidationErrors] or [ErrUnsupportedType].
	Validate(context.Context, any, ...string) error
}
