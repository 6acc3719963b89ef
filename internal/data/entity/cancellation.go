package entity

import (
	"time"
)

type CancellationStatus string

const (
	CancellationStatusPending  CancellationStatus = "Pending"
	CancellationStatusApproved CancellationStatus = "Approved"
	CancellationStatusRejected CancellationStatus = "Rejected"
)

// CancellationRequest is a teacher-initiated, admin-resolved proposal to
// delete an existing booking. Approved and Rejected are terminal.
type CancellationRequest struct {
	ID        int64              `db:"id"`
	Kind      ResourceKind       `db:"-"`
	BookingID int64              `db:"booking_id"`
	Requester string             `db:"teacher_username"`
	Reason    string             `db:"reason"`
	Status    CancellationStatus `db:"status"`
	CreatedAt time.Time          `db:"created_at"`
}
