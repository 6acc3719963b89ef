package wire

import (
	"classroom-booking/internal/adaptor"
	"classroom-booking/internal/data/repository"
	"classroom-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireResource(
	r chi.Router,
	resourceHandler *adaptor.ResourceHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/schedule - Anonymous student dashboard (read-only day view)
	r.Get("/api/schedule", resourceHandler.GetDaySchedule)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Faculty, log))

		// GET /api/resources - List classrooms or labs
		r.Get("/api/resources", resourceHandler.GetResources)

		// GET /api/resources/available - Free resources for a time window
		r.Get("/api/resources/available", resourceHandler.GetAvailable)
	})
}
