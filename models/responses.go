// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message is the body of every error response and of some plain
// acknowledgements: {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}
