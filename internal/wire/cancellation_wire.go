package wire

import (
	"classroom-booking/internal/adaptor"
	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/data/repository"
	"classroom-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCancellation(
	r chi.Router,
	cancellationHandler *adaptor.CancellationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== TEACHER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Faculty, log))
		r.Use(middleware.RequireRole(entity.OpSubmitCancellation, log))

		// POST /api/cancellations - Request cancellation of a booking
		r.Post("/api/cancellations", cancellationHandler.SubmitCancellation)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/cancellations", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Faculty, log))
		r.Use(middleware.RequireRole(entity.OpResolveCancellation, log))

		// GET /api/admin/cancellations?kind= - Pending requests
		r.Get("/", cancellationHandler.GetPendingCancellations)

		// PUT /api/admin/cancellations/{id}/resolve - Approve or reject
		r.Put("/{id}/resolve", cancellationHandler.ResolveCancellation)
	})
}
