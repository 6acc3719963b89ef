package repository

import (
	"time"

	"classroom-booking/internal/data/entity"
)

// Classrooms and labs live in separate tables, as do their bookings and
// cancellation requests. The kind switch picks the sub-table; everything
// else about the queries is identical.

func resourceTable(kind entity.ResourceKind) string {
	if kind == entity.KindLab {
		return "labs"
	}
	return "classrooms"
}

func bookingTable(kind entity.ResourceKind) string {
	if kind == entity.KindLab {
		return "lab_bookings"
	}
	return "bookings"
}

func cancellationTable(kind entity.ResourceKind) string {
	if kind == entity.KindLab {
		return "cancel_lab_requests"
	}
	return "cancel_requests"
}

// nowMinutes returns the server wall clock as minutes since midnight,
// used for the "end time still in the future" cutoff on today's rows.
func nowMinutes() int {
	now := time.Now()
	return now.Hour()*60 + now.Minute()
}
