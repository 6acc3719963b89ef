package usecase

import (
	"context"
	"fmt"
	"time"

	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/data/repository"
	"classroom-booking/internal/dto/request"
	"classroom-booking/internal/dto/response"
	"classroom-booking/pkg/apperrors"
	"classroom-booking/pkg/timeslot"
	"classroom-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, caller entity.Caller, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	List(ctx context.Context, caller entity.Caller, kind entity.ResourceKind, includeHistorical bool) ([]response.BookingResponse, error)

	// Delete removes a confirmed booking. Only the cancellation workflow
	// calls this; it is not exposed over HTTP.
	Delete(ctx context.Context, kind entity.ResourceKind, id int64) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, caller entity.Caller, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Preconditions in order: identity, time range, date, then the role
	// gate. Each is a distinct failure mode and none touches the store.
	if caller.Username == "" {
		return nil, fmt.Errorf("no caller identity: %w", apperrors.ErrUnauthenticated)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	start, err := timeslot.ParseTimeOfDay(req.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %s: %w", req.Start, err)
	}
	end, err := timeslot.ParseTimeOfDay(req.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %s: %w", req.End, err)
	}

	if start >= end {
		return nil, fmt.Errorf("%s to %s: %w", req.Start, req.End, apperrors.ErrInvalidRange)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}

	// The presentation layer already keeps past dates out of the picker;
	// re-validate against the server clock regardless.
	year, month, day := time.Now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, fmt.Errorf("%s: %w", req.Date, apperrors.ErrPastDate)
	}

	if !caller.Role.Can(entity.OpCreateBooking) {
		s.log.Warn("Booking creation denied",
			zap.String("username", caller.Username),
			zap.String("role", string(caller.Role)),
		)
		return nil, fmt.Errorf("role %s cannot create bookings: %w", caller.Role, apperrors.ErrForbidden)
	}

	booking := &entity.Booking{
		Kind:        entity.ResourceKind(req.Kind),
		Owner:       caller.Username,
		Resource:    req.Resource,
		Date:        date,
		Start:       start,
		End:         end,
		Description: req.Description,
	}

	// The availability re-check and the insert share one transaction;
	// that is what keeps two concurrent callers from both succeeding.
	if err := s.repo.Booking.CreateWithConflictCheck(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.String("kind", string(booking.Kind)),
		zap.String("resource", booking.Resource),
		zap.String("owner", booking.Owner),
		zap.String("date", req.Date),
		zap.String("slot", booking.Start.String()+"-"+booking.End.String()),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) List(ctx context.Context, caller entity.Caller, kind entity.ResourceKind, includeHistorical bool) ([]response.BookingResponse, error) {
	if caller.Username == "" {
		return nil, fmt.Errorf("no caller identity: %w", apperrors.ErrUnauthenticated)
	}

	if !caller.Role.Can(entity.OpViewDashboard) {
		return nil, fmt.Errorf("role %s cannot view bookings: %w", caller.Role, apperrors.ErrForbidden)
	}

	if !kind.Valid() {
		return nil, fmt.Errorf("unknown resource kind %q: %w", kind, apperrors.ErrNotFound)
	}

	var bookings []*entity.Booking
	var err error

	// Admins reviewing lab cancellations need every owner's upcoming
	// bookings, not just their own.
	if caller.Role == entity.RoleAdmin && kind == entity.KindLab && !includeHistorical {
		bookings, err = s.repo.Booking.FindAllUpcoming(ctx, kind)
	} else {
		bookings, err = s.repo.Booking.FindByOwner(ctx, kind, caller.Username, includeHistorical)
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("Bookings listed",
		zap.String("username", caller.Username),
		zap.String("kind", string(kind)),
		zap.Bool("historical", includeHistorical),
		zap.Int("count", len(bookings)),
	)

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) Delete(ctx context.Context, kind entity.ResourceKind, id int64) error {
	return s.repo.Booking.Delete(ctx, kind, id)
}
