package entity

import (
	"time"

	"classroom-booking/pkg/timeslot"
)

// Booking is a confirmed reservation of a resource for a date and a
// half-open [Start, End) time interval. Rows are created by the booking
// ledger and deleted by the cancellation workflow; never updated in place.
type Booking struct {
	ID          int64              `db:"id"`
	Kind        ResourceKind       `db:"-"`
	Owner       string             `db:"username"`
	Resource    string             `db:"resource_name"`
	Floor       string             `db:"floor"`
	Date        time.Time          `db:"date"`
	Start       timeslot.TimeOfDay `db:"start_min"`
	End         timeslot.TimeOfDay `db:"end_min"`
	Description string             `db:"description"`
	CreatedAt   time.Time          `db:"created_at"`
}

// Duration is derived at read time, never persisted.
func (b *Booking) Duration() time.Duration {
	return timeslot.Duration(b.Start, b.End)
}
