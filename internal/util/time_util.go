package util

import (
	"time"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Clock provides "today" so the daily snapshot date can be pinned in tests.
type Clock interface {
	Today() time.Time
}

type clockHandler struct{}

func NewClock() Clock {
	return clockHandler{}
}

// Today returns the server-local calendar date at midnight UTC.
func (c clockHandler) Today() time.Time {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// FrozenClock always reports the same date.
type FrozenClock struct {
	Date time.Time
}

func (c FrozenClock) Today() time.Time {
	return c.Date
}
