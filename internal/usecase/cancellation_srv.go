package usecase

import (
	"context"
	"errors"
	"fmt"

	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/data/repository"
	"classroom-booking/internal/dto/request"
	"classroom-booking/internal/dto/response"
	"classroom-booking/pkg/apperrors"
	"classroom-booking/pkg/utils"

	"go.uber.org/zap"
)

type CancellationDecision string

const (
	DecisionApprove CancellationDecision = "approve"
	DecisionReject  CancellationDecision = "reject"
)

type CancellationService interface {
	Submit(ctx context.Context, caller entity.Caller, req *request.SubmitCancellationRequest) (*response.CancellationResponse, error)
	ListPending(ctx context.Context, caller entity.Caller, kind entity.ResourceKind) ([]response.CancellationResponse, error)
	Resolve(ctx context.Context, caller entity.Caller, kind entity.ResourceKind, requestID int64, decision CancellationDecision) error
}

type cancellationService struct {
	repo   *repository.Repository
	ledger BookingService
	log    *zap.Logger
}

func NewCancellationService(repo *repository.Repository, ledger BookingService, log *zap.Logger) CancellationService {
	return &cancellationService{
		repo:   repo,
		ledger: ledger,
		log:    log.With(zap.String("service", "cancellation")),
	}
}

func (s *cancellationService) Submit(ctx context.Context, caller entity.Caller, req *request.SubmitCancellationRequest) (*response.CancellationResponse, error) {
	if caller.Username == "" {
		return nil, fmt.Errorf("no caller identity: %w", apperrors.ErrUnauthenticated)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit cancellation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !caller.Role.Can(entity.OpSubmitCancellation) {
		s.log.Warn("Cancellation submission denied",
			zap.String("username", caller.Username),
			zap.String("role", string(caller.Role)),
		)
		return nil, fmt.Errorf("role %s cannot request cancellations: %w", caller.Role, apperrors.ErrForbidden)
	}

	kind := entity.ResourceKind(req.Kind)

	booking, err := s.repo.Booking.FindByID(ctx, kind, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%s booking %d: %w", kind, req.BookingID, apperrors.ErrNotFound)
	}

	// Multiple pending requests for the same booking are tolerated;
	// approving any of them cancels the booking and later approvals hit
	// the idempotent missing-booking path in Resolve.
	cancellation := &entity.CancellationRequest{
		Kind:      kind,
		BookingID: req.BookingID,
		Requester: caller.Username,
		Reason:    req.Reason,
	}

	if err := s.repo.Cancellation.Create(ctx, cancellation); err != nil {
		return nil, err
	}

	s.log.Info("Cancellation request submitted",
		zap.Int64("request_id", cancellation.ID),
		zap.Int64("booking_id", req.BookingID),
		zap.String("kind", req.Kind),
		zap.String("requester", caller.Username),
	)

	resp := response.CancellationToResponse(cancellation)
	return &resp, nil
}

func (s *cancellationService) ListPending(ctx context.Context, caller entity.Caller, kind entity.ResourceKind) ([]response.CancellationResponse, error) {
	if caller.Username == "" {
		return nil, fmt.Errorf("no caller identity: %w", apperrors.ErrUnauthenticated)
	}

	if !caller.Role.Can(entity.OpResolveCancellation) {
		return nil, fmt.Errorf("role %s cannot review cancellations: %w", caller.Role, apperrors.ErrForbidden)
	}

	if !kind.Valid() {
		return nil, fmt.Errorf("unknown resource kind %q: %w", kind, apperrors.ErrNotFound)
	}

	requests, err := s.repo.Cancellation.FindPending(ctx, kind)
	if err != nil {
		return nil, err
	}

	return response.CancellationsToResponse(requests), nil
}

func (s *cancellationService) Resolve(ctx context.Context, caller entity.Caller, kind entity.ResourceKind, requestID int64, decision CancellationDecision) error {
	if caller.Username == "" {
		return fmt.Errorf("no caller identity: %w", apperrors.ErrUnauthenticated)
	}

	if !caller.Role.Can(entity.OpResolveCancellation) {
		s.log.Warn("Cancellation resolution denied",
			zap.String("username", caller.Username),
			zap.String("role", string(caller.Role)),
		)
		return fmt.Errorf("role %s cannot resolve cancellations: %w", caller.Role, apperrors.ErrForbidden)
	}

	req, err := s.repo.Cancellation.FindByID(ctx, kind, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return fmt.Errorf("%s cancellation request %d: %w", kind, requestID, apperrors.ErrNotFound)
	}
	if req.Status != entity.CancellationStatusPending {
		return fmt.Errorf("request %d is %s: %w", requestID, req.Status, apperrors.ErrInvalidTransition)
	}

	status := entity.CancellationStatusRejected
	if decision == DecisionApprove {
		status = entity.CancellationStatusApproved

		// Delete the target booking before flipping the status. A missing
		// booking means another approval got there first; the request
		// still resolves to Approved.
		if err := s.ledger.Delete(ctx, kind, req.BookingID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			s.log.Warn("Approved cancellation for already-deleted booking",
				zap.Int64("request_id", requestID),
				zap.Int64("booking_id", req.BookingID),
			)
		}
	}

	updated, err := s.repo.Cancellation.UpdateStatusIfPending(ctx, kind, requestID, status)
	if err != nil {
		return err
	}
	if !updated {
		// Lost a race with another admin between the read and the update.
		return fmt.Errorf("request %d resolved concurrently: %w", requestID, apperrors.ErrInvalidTransition)
	}

	s.log.Info("Cancellation request resolved",
		zap.Int64("request_id", requestID),
		zap.Int64("booking_id", req.BookingID),
		zap.String("kind", string(kind)),
		zap.String("status", string(status)),
		zap.String("resolved_by", caller.Username),
	)

	return nil
}
