// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming requests before they reach the service
// layer.
//
// A Validator accepts any supported request model and optionally a list of
// field names that restricts which rules run. Without field names a default
// set for the model is checked.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
