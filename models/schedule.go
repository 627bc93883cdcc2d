// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DayOfWeek names a weekday in a recurrence schedule.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// DaysOfTheWeek lists the accepted DayOfWeek values in calendar order.
var DaysOfTheWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Recurrence is one slot of a weekly schedule. Time is a wall-clock time
// encoded as HHMM (e.g. 1315 for 13:15).
type Recurrence struct {
	Day  DayOfWeek `json:"day" validate:"required,weekday"`
	Time int       `json:"time" validate:"hhmm"`
}

// Schedule is the weekly recurrence of a task. It is persisted as a JSON
// document in a text column.
type Schedule []Recurrence

// Value implements [driver.Valuer].
func (s Schedule) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("error marshaling schedule: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (s *Schedule) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported schedule column type %T", src)
	}

	var decoded Schedule
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("error unmarshaling schedule: %w", err)
	}
	if len(decoded) == 0 {
		decoded = nil
	}
	*s = decoded
	return nil
}
