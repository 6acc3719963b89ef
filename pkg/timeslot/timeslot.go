package timeslot

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// Keeping it an integer makes the overlap predicate a plain comparison
// and avoids carrying a fake calendar date around with every slot.
type TimeOfDay int

const (
	MinutesPerDay = 24 * 60
)

// ParseTimeOfDay parses a "15:04" formatted clock time.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// String formats back to "15:04".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Valid reports whether t falls within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Duration returns the length of the half-open interval [start, end).
func Duration(start, end TimeOfDay) time.Duration {
	return time.Duration(end-start) * time.Minute
}

// Overlaps decides whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) on the same resource and date share any instant.
// Touching endpoints do not overlap. Every availability and conflict
// decision in the system goes through this predicate.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}
