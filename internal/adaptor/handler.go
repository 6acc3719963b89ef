package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/usecase"
	"classroom-booking/pkg/apperrors"
	"classroom-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Resource     *ResourceHandler
	Booking      *BookingHandler
	Cancellation *CancellationHandler
}

func NewHandler(service *usecase.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, logger),
		Resource:     NewResourceHandler(service.Resource, logger),
		Booking:      NewBookingHandler(service.Booking, logger),
		Cancellation: NewCancellationHandler(service.Cancellation, logger),
	}
}

// callerFromContext rebuilds the explicit caller identity set by the
// auth middleware.
func callerFromContext(r *http.Request) (entity.Caller, bool) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		return entity.Caller{}, false
	}

	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		return entity.Caller{}, false
	}

	return entity.Caller{Username: username, Role: entity.Role(role)}, true
}

// handleServiceError maps the typed failure taxonomy onto HTTP statuses.
// Business failures keep their message; storage failures do not leak.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		log.Warn(operation+" failed - unauthenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, apperrors.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, apperrors.ErrInvalidRange),
		errors.Is(err, apperrors.ErrPastDate):
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrAlreadyExists),
		errors.Is(err, apperrors.ErrInvalidTransition):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	// Storage failures must be classified before the message-based
	// fallback: driver errors often contain "invalid" and must never
	// surface as a 400 with internal detail in the body.
	case errors.Is(err, apperrors.ErrStorage):
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
