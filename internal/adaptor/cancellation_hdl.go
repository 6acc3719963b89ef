package adaptor

import (
	"encoding/json"
	"net/http"

	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/dto/request"
	"classroom-booking/internal/usecase"
	"classroom-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CancellationHandler struct {
	service usecase.CancellationService
	log     *zap.Logger
}

func NewCancellationHandler(service usecase.CancellationService, log *zap.Logger) *CancellationHandler {
	return &CancellationHandler{
		service: service,
		log:     log.With(zap.String("handler", "cancellation")),
	}
}

// SubmitCancellation handles POST /api/cancellations (teacher)
func (h *CancellationHandler) SubmitCancellation(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitCancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	cancellation, err := h.service.Submit(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit cancellation")
		return
	}

	utils.ResponseCreated(w, "Cancellation request sent", cancellation)
}

// GetPendingCancellations handles GET /api/admin/cancellations?kind= (admin)
func (h *CancellationHandler) GetPendingCancellations(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	kind := entity.ResourceKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = entity.KindClassroom
	}

	requests, err := h.service.ListPending(r.Context(), caller, kind)
	if err != nil {
		handleServiceError(w, h.log, err, "list pending cancellations")
		return
	}

	utils.ResponseSuccess(w, "success", requests)
}

// ResolveCancellation handles PUT /api/admin/cancellations/{id}/resolve (admin)
func (h *CancellationHandler) ResolveCancellation(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	requestID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request ID", nil)
		return
	}

	var req request.ResolveCancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	err = h.service.Resolve(r.Context(), caller,
		entity.ResourceKind(req.Kind), requestID,
		usecase.CancellationDecision(req.Decision))
	if err != nil {
		handleServiceError(w, h.log, err, "resolve cancellation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
