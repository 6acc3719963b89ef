package middleware

import (
	"net/http"
	"strings"

	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/data/repository"
	"classroom-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the bearer session token and attaches the
// verified identity and role to the request context. Downstream code
// never reads ambient session state.
func AuthSession(sessionRepo repository.SessionRepository, facultyRepo repository.FacultyRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			faculty, err := facultyRepo.FindByID(r.Context(), session.FacultyID)
			if err != nil {
				logger.Error("Failed to load session faculty",
					zap.Error(err),
					zap.String("faculty_id", session.FacultyID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if faculty == nil {
				logger.Warn("Session references missing faculty",
					zap.String("faculty_id", session.FacultyID.String()))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), faculty.Username, string(faculty.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the access policy table. Must run after
// AuthSession.
func RequireRole(op entity.Operation, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !entity.Role(role).Can(op) {
				username, _ := utils.GetUsernameFromContext(r.Context())
				logger.Warn("Operation denied by access policy",
					zap.String("username", username),
					zap.String("role", role),
					zap.String("operation", string(op)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
