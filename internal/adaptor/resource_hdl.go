package adaptor

import (
	"net/http"

	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/dto/request"
	"classroom-booking/internal/usecase"
	"classroom-booking/pkg/utils"

	"go.uber.org/zap"
)

type ResourceHandler struct {
	service usecase.ResourceService
	log     *zap.Logger
}

func NewResourceHandler(service usecase.ResourceService, log *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		service: service,
		log:     log.With(zap.String("handler", "resource")),
	}
}

// GetAvailable handles GET /api/resources/available (protected)
func (h *ResourceHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.AvailabilityRequest{
		Kind:  query.Get("kind"),
		Floor: query.Get("floor"),
		Date:  query.Get("date"),
		Start: query.Get("start"),
		End:   query.Get("end"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	available, err := h.service.ListAvailable(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list available resources")
		return
	}

	utils.ResponseSuccess(w, "success", available)
}

// GetResources handles GET /api/resources?kind=&floor= (protected)
func (h *ResourceHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	kind := entity.ResourceKind(query.Get("kind"))
	if kind == "" {
		kind = entity.KindClassroom
	}

	resources, err := h.service.ListResources(r.Context(), kind, query.Get("floor"))
	if err != nil {
		handleServiceError(w, h.log, err, "list resources")
		return
	}

	utils.ResponseSuccess(w, "success", resources)
}

// GetDaySchedule handles GET /api/schedule?date=&floor= (public).
// This is the anonymous student dashboard.
func (h *ResourceHandler) GetDaySchedule(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.DayScheduleRequest{
		Date:  query.Get("date"),
		Floor: query.Get("floor"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	schedule, err := h.service.DaySchedule(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get day schedule")
		return
	}

	utils.ResponseSuccess(w, "success", schedule)
}
