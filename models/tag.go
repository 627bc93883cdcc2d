// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Tag is a user-defined label that can be attached to tasks.
// TagName is unique per user.
type Tag struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TagName   string    `json:"tagName" validate:"required,max=64"`
	TagColor  string    `json:"tagColor" validate:"required,max=32"`
	CreatedAt time.Time `json:"createdAt"`
}

// TagUpdate describes a partial update of a tag. Nil fields are left as is.
type TagUpdate struct {
	TagName  *string `json:"tagName,omitempty" validate:"omitempty,min=1,max=64"`
	TagColor *string `json:"tagColor,omitempty" validate:"omitempty,min=1,max=32"`
}

// IsEmpty reports whether the update carries no fields.
func (u TagUpdate) IsEmpty() bool {
	return u.TagName == nil && u.TagColor == nil
}

// Apply copies the non-nil fields of u onto tag.
func (u TagUpdate) Apply(tag *Tag) {
	if u.TagName != nil {
		tag.TagName = *u.TagName
	}
	if u.TagColor != nil {
		tag.TagColor = *u.TagColor
	}
}
