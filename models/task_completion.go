// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CompletionDateLayout is the layout of TaskCompletion.CompletionDate.
const CompletionDateLayout = "2006-01-02"

// TaskCompletion records that a task was done on a given calendar day.
// A task can be completed at most once per day.
type TaskCompletion struct {
	ID             string    `json:"id"`
	TaskID         string    `json:"taskId"`
	CompletionDate string    `json:"completionDate" validate:"omitempty,datetime=2006-01-02"`
	CompletionTime time.Time `json:"completionTime"`
}
