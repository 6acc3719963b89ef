package response

import (
	"time"

	"classroom-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Owner       string    `json:"owner"`
	Resource    string    `json:"resource"`
	Floor       string    `json:"floor"`
	Date        string    `json:"date"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	Duration    string    `json:"duration"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID,
		Kind:        string(booking.Kind),
		Owner:       booking.Owner,
		Resource:    booking.Resource,
		Floor:       booking.Floor,
		Date:        booking.Date.Format("2006-01-02"),
		Start:       booking.Start.String(),
		End:         booking.End.String(),
		Duration:    booking.Duration().String(),
		Description: booking.Description,
		CreatedAt:   booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = BookingToResponse(booking)
	}
	return responses
}
