package reps

import (
	"fmt"
	"time"
)

// Window is a closed time interval, both ends included.
type Window struct {
	From time.Time
	To   time.Time
}

// WeekWindow returns the Sunday to Saturday week containing ref, computed in UTC.
// A week starting in the previous month rolls over through time.Date normalization.
func WeekWindow(ref time.Time) Window {
	ref = ref.UTC()
	first := ref.Day() - int(ref.Weekday())
	last := first + 6

	return Window{
		From: time.Date(ref.Year(), ref.Month(), first, 0, 0, 0, 0, time.UTC),
		To:   time.Date(ref.Year(), ref.Month(), last, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// ParseReferenceDate accepts a plain date (2006-01-02) or an RFC3339 timestamp.
func ParseReferenceDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date [%s] is neither 2006-01-02 nor RFC3339", s)
	}
	return t, nil
}
