package response

import (
	"time"

	"classroom-booking/internal/data/entity"
)

type CancellationResponse struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	BookingID int64     `json:"booking_id"`
	Requester string    `json:"requester"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func CancellationToResponse(req *entity.CancellationRequest) CancellationResponse {
	return CancellationResponse{
		ID:        req.ID,
		Kind:      string(req.Kind),
		BookingID: req.BookingID,
		Requester: req.Requester,
		Reason:    req.Reason,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
	}
}

func CancellationsToResponse(requests []*entity.CancellationRequest) []CancellationResponse {
	responses := make([]CancellationResponse, len(requests))
	for i, req := range requests {
		responses[i] = CancellationToResponse(req)
	}
	return responses
}
