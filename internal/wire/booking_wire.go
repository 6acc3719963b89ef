package wire

import (
	"classroom-booking/internal/adaptor"
	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/data/repository"
	"classroom-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Faculty, log))

		// GET /api/bookings - Own booking history (admins see every lab booking)
		r.Get("/api/bookings", bookingHandler.GetBookings)

		// POST /api/bookings - Create booking (teacher/admin per access policy)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(entity.OpCreateBooking, log))
			r.Post("/api/bookings", bookingHandler.CreateBooking)
		})
	})
}
