package wire

import (
	"classroom-booking/internal/adaptor"
	"classroom-booking/internal/data/repository"
	"classroom-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/register - Faculty registration (teacher/admin accounts)
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Faculty login
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Faculty, log))

		// POST /api/logout - Revoke current session
		r.Post("/api/logout", authHandler.Logout)
	})
}
