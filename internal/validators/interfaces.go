// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming requests and domain values before
// they reach the services.
//
// Structural rules (required fields, lengths, formats) are declared as
// `validate` struct tags on the models and enforced through
// go-playground/validator. Cross-field rules, such as the date rule of a
// task, are enforced by [RequestValidator] itself. All failures are
// reported as package sentinel errors so transport layers can map them with
// errors.Is.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
