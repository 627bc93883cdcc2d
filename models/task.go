// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Task is a unit of work owned by a user.
//
// A task is either one-off or recurring:
//   - one-off (IsRecursive == false) tasks must carry TaskDate;
//   - recurring tasks must carry a non-empty RecTaskDate schedule.
type Task struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	TaskName        string `json:"taskName"`
	TaskDescription string `json:"taskDescription"`
	IsRecursive     bool   `json:"isRecursive"`

	// TaskDate is the due moment of a one-off task in unix seconds.
	TaskDate *int64 `json:"taskDate,omitempty"`

	// RecTaskDate is the weekly schedule of a recurring task.
	RecTaskDate Schedule `json:"recTaskDate,omitempty"`

	Tags        []Tag            `json:"tags"`
	Completions []TaskCompletion `json:"completions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasDates reports whether t satisfies the date rule for its kind.
func (t Task) HasDates() bool {
	if t.IsRecursive {
		return len(t.RecTaskDate) > 0
	}
	return t.TaskDate != nil
}

// TagIDs returns the identifiers of the tags attached to t.
func (t Task) TagIDs() []string {
	ids := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

// CreateTaskRequest is the body of POST /api/tasks/{userId}.
type CreateTaskRequest struct {
	TaskName        string   `json:"taskName" validate:"required,max=255"`
	TaskDescription string   `json:"taskDescription" validate:"max=4096"`
	IsRecursive     bool     `json:"isRecursive"`
	TaskDate        *int64   `json:"taskDate,omitempty" validate:"omitempty,gte=0"`
	RecTaskDate     Schedule `json:"recTaskDate,omitempty" validate:"omitempty,dive"`
	TagIDs          []string `json:"tagIds,omitempty" validate:"omitempty,dive,uuid"`
}

// UpdateTaskRequest is the body of PUT /api/tasks/{userId}/{taskId}.
// Nil fields are left untouched; a non-nil TagIDs replaces the tag set.
type UpdateTaskRequest struct {
	TaskName        *string   `json:"taskName,omitempty" validate:"omitempty,min=1,max=255"`
	TaskDescription *string   `json:"taskDescription,omitempty" validate:"omitempty,max=4096"`
	IsRecursive     *bool     `json:"isRecursive,omitempty"`
	TaskDate        *int64    `json:"taskDate,omitempty" validate:"omitempty,gte=0"`
	RecTaskDate     *Schedule `json:"recTaskDate,omitempty" validate:"omitempty,dive"`
	TagIDs          *[]string `json:"tagIds,omitempty" validate:"omitempty,dive,uuid"`
}

// IsEmpty reports whether the update carries no fields.
func (u UpdateTaskRequest) IsEmpty() bool {
	return u.TaskName == nil &&
		u.TaskDescription == nil &&
		u.IsRecursive == nil &&
		u.TaskDate == nil &&
		u.RecTaskDate == nil &&
		u.TagIDs == nil
}

// Apply copies the non-nil scalar fields of u onto task. Tags are handled
// by the caller because they require an ownership check.
func (u UpdateTaskRequest) Apply(task *Task) {
	if u.TaskName != nil {
		task.TaskName = *u.TaskName
	}
	if u.TaskDescription != nil {
		task.TaskDescription = *u.TaskDescription
	}
	if u.IsRecursive != nil {
		task.IsRecursive = *u.IsRecursive
	}
	if u.TaskDate != nil {
		date := *u.TaskDate
		task.TaskDate = &date
	}
	if u.RecTaskDate != nil {
		task.RecTaskDate = *u.RecTaskDate
	}
}

// TaskStatus filters tasks by completion state.
type TaskStatus string

const (
	// TaskStatusAny disables status filtering.
	TaskStatusAny TaskStatus = ""
	// TaskStatusCompleted keeps tasks with at least one completion.
	TaskStatusCompleted TaskStatus = "completed"
	// TaskStatusInProgress keeps tasks without completions.
	TaskStatusInProgress TaskStatus = "in-progress"
)

// TaskFilter narrows GET /api/tasks/{userId}.
type TaskFilter struct {
	UserID string

	// TagIDs keeps tasks that carry every listed tag.
	TagIDs []string `validate:"omitempty,dive,uuid"`

	Status TaskStatus `validate:"omitempty,oneof=completed in-progress"`

	// From and To bound TaskDate (unix seconds, inclusive).
	From *int64 `validate:"omitempty,gte=0"`
	To   *int64 `validate:"omitempty,gte=0"`
}
