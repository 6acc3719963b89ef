package response

import (
	"classroom-booking/internal/data/entity"
)

type ResourceResponse struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Floor string `json:"floor"`
}

func ResourceToResponse(resource *entity.Resource) ResourceResponse {
	return ResourceResponse{
		Name:  resource.Name,
		Kind:  string(resource.Kind),
		Floor: resource.Floor,
	}
}

func ResourcesToResponse(resources []*entity.Resource) []ResourceResponse {
	responses := make([]ResourceResponse, len(resources))
	for i, resource := range resources {
		responses[i] = ResourceToResponse(resource)
	}
	return responses
}

// ScheduleEntry is the anonymous dashboard view of a booking: who booked
// it is not shown, only when the space is taken.
type ScheduleEntry struct {
	Resource    string `json:"resource"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description,omitempty"`
}

type DayScheduleResponse struct {
	Date       string          `json:"date"`
	Floor      string          `json:"floor,omitempty"`
	Classrooms []ScheduleEntry `json:"classrooms"`
	Labs       []ScheduleEntry `json:"labs"`
}
