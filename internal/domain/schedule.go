package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Deadline is a naive local-time instant resolved from a task's date and
// time strings. It deliberately carries no timezone: tasks are scheduled
// against the user's wall clock, and comparing two Deadlines (or a Deadline
// against a NaiveNow reading) never involves zone conversion. Do not mix
// Deadline values with ordinary time.Time values.
type Deadline struct {
	t time.Time
}

// timePattern matches the wall-clock format stored on tasks:
// a 12-hour "h:mm" time followed by an AM/PM marker.
var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}) (AM|PM)$`)

// dateLayout is the calendar date format stored on tasks.
const dateLayout = "2006-01-02"

// deadlineLayout is the normalized 24-hour layout a date/time pair is
// reduced to before parsing.
const deadlineLayout = "2006-01-02 15:04"

// ParseDeadline resolves a date string ("YYYY-MM-DD") and a 12-hour time
// string ("h:mm AM|PM") into a Deadline. The result is deterministic and
// independent of the process-local timezone: parsing happens in a fixed
// zone-free frame (time.Parse's UTC), never in time.Local.
//
// Returns ErrInvalidDateTime (wrapped with detail) when either string is
// empty, the time does not match the expected shape, the hour/minute fall
// outside the 12-hour clock, or the combined timestamp fails to parse.
func ParseDeadline(date, clock string) (Deadline, error) {
	if date == "" || clock == "" {
		return Deadline{}, fmt.Errorf("%w: date and time are required", ErrInvalidDateTime)
	}

	m := timePattern.FindStringSubmatch(clock)
	if m == nil {
		return Deadline{}, fmt.Errorf("%w: time %q is not in h:mm AM/PM format", ErrInvalidDateTime, clock)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return Deadline{}, fmt.Errorf("%w: hour %q is outside the 12-hour clock", ErrInvalidDateTime, m[1])
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return Deadline{}, fmt.Errorf("%w: minute %q is out of range", ErrInvalidDateTime, m[2])
	}

	// 12-hour to 24-hour: PM adds 12 except at noon, 12 AM is midnight.
	switch m[3] {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	t, err := time.Parse(deadlineLayout, fmt.Sprintf("%s %02d:%02d", date, hour, minute))
	if err != nil {
		return Deadline{}, fmt.Errorf("%w: %q does not resolve to a valid timestamp", ErrInvalidDateTime, date+" "+clock)
	}

	return Deadline{t: t}, nil
}

// NaiveNow projects a wall-clock reading onto the same zone-free frame that
// ParseDeadline produces, so the two are directly comparable. The reading's
// displayed local fields are kept and its zone discarded.
func NaiveNow(now time.Time) Deadline {
	y, mo, d := now.Date()
	h, mi, s := now.Clock()
	return Deadline{t: time.Date(y, mo, d, h, mi, s, 0, time.UTC)}
}

// Before reports whether d is strictly before other on the naive timeline.
func (d Deadline) Before(other Deadline) bool {
	return d.t.Before(other.t)
}

// Time exposes the underlying zone-free timestamp, primarily for display
// and logging.
func (d Deadline) Time() time.Time {
	return d.t
}

// String implements fmt.Stringer.
func (d Deadline) String() string {
	return d.t.Format(deadlineLayout)
}
