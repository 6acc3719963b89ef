package usecase

import (
	"classroom-booking/internal/data/repository"
	"classroom-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Resource     ResourceService
	Booking      BookingService
	Cancellation CancellationService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	// The cancellation workflow mutates bookings only through the ledger.
	booking := NewBookingService(repo, log)

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Resource:     NewResourceService(repo, log),
		Booking:      booking,
		Cancellation: NewCancellationService(repo, booking, log),
	}
}
