package request

type SubmitCancellationRequest struct {
	Kind      string `json:"kind" validate:"required,oneof=classroom lab"`
	BookingID int64  `json:"booking_id" validate:"required,min=1"`
	Reason    string `json:"reason" validate:"required,max=500"`
}

type ResolveCancellationRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=classroom lab"`
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}
