package repository

import (
	"classroom-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Faculty      FacultyRepository
	Session      SessionRepository
	Resource     ResourceRepository
	Booking      BookingRepository
	Cancellation CancellationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Faculty:      NewFacultyRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Resource:     NewResourceRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Cancellation: NewCancellationRepository(db, log),
	}
}
