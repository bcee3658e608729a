package model

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/guregu/null/v5"
)

// ErrInvalidDeadline is returned for a deadline that is neither null nor a
// recognised date or date-time string.
var ErrInvalidDeadline = errors.New("invalid deadline")

// deadlineLayouts are tried in order. Values without a zone are UTC.
var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseDeadline parses a client supplied deadline.
func ParseDeadline(s string) (time.Time, error) {
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDeadline
}

// Deadline is a deadline field in a request body.
//
// Set records whether the field was present at all, so a PATCH can tell
// "keep the current deadline" (absent) from "clear it" (null). A value that
// does not parse leaves Invalid set; decoding itself never fails, so the
// owning request reports it during validation, after existence checks.
type Deadline struct {
	null.Time
	Set     bool
	Invalid bool
}

// UnmarshalJSON accepts null or a string in one of the deadline layouts.
func (d *Deadline) UnmarshalJSON(data []byte) error {
	d.Set = true
	d.Invalid = false
	d.Time = null.Time{}

	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		d.Invalid = true
		return nil
	}

	t, err := ParseDeadline(s)
	if err != nil {
		d.Invalid = true
		return nil
	}

	d.Time = null.TimeFrom(t)
	return nil
}

// Validate reports an unparseable deadline as a 400.
func (d Deadline) Validate() error {
	if d.Invalid {
		return errs.NewBadRequestError("Invalid deadline", true, nil, []errs.FieldError{
			{Field: "deadline", Error: "must be a date or date-time"},
		})
	}
	return nil
}
