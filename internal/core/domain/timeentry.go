package domain

import "time"

// TimeEntry records work spent on a task. Minutes is the duration unit; the
// system this replaces stored minutes in a column named "hours".
type TimeEntry struct {
	ID          uint64
	TaskID      uint64
	UserID      uint64
	Description *string
	Minutes     int
	Date        time.Time
	CreatedAt   time.Time
}

type CreateTimeEntryInput struct {
	Description *string
	Minutes     int
	Date        time.Time
}
