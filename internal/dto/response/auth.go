package response

import (
	"time"

	"classroom-booking/internal/data/entity"
)

type FacultyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Faculty   FacultyResponse `json:"faculty"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func FacultyToResponse(faculty *entity.Faculty) FacultyResponse {
	return FacultyResponse{
		ID:       faculty.ID.String(),
		Name:     faculty.Name,
		Username: faculty.Username,
		Role:     string(faculty.Role),
	}
}
