// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the ergo configuration.
//
// Values are gathered from four sources and merged in order, later non-zero
// values overriding earlier ones: built-in defaults, environment variables,
// command-line flags and an optional JSON file whose path is taken from the
// CONFIG variable or the -c / -config flag. The merged result is validated
// before it is handed to the application.
package config
