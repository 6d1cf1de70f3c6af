// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces input rules before anything touches the vault
// directory.
//
// Entry names double as file stems and as lines of an export archive, so
// they are checked before any path is built from them. Validator
// implementations are injected into services and called with the value and,
// optionally, the names of the fields to check.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
