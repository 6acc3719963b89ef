package request

type CreateBookingRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=classroom lab"`
	Resource    string `json:"resource" validate:"required,max=100"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Start       string `json:"start" validate:"required,datetime=15:04"`
	End         string `json:"end" validate:"required,datetime=15:04"`
	Description string `json:"description" validate:"max=500"`
}

// AvailabilityRequest comes in as query parameters on the availability
// endpoint. Floor only applies to classrooms.
type AvailabilityRequest struct {
	Kind  string `validate:"required,oneof=classroom lab"`
	Floor string `validate:"max=10"`
	Date  string `validate:"required,datetime=2006-01-02"`
	Start string `validate:"required,datetime=15:04"`
	End   string `validate:"required,datetime=15:04"`
}

type DayScheduleRequest struct {
	Date  string `validate:"required,datetime=2006-01-02"`
	Floor string `validate:"max=10"`
}
