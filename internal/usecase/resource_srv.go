package usecase

import (
	"context"
	"fmt"
	"time"

	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/data/repository"
	"classroom-booking/internal/dto/request"
	"classroom-booking/internal/dto/response"
	"classroom-booking/pkg/apperrors"
	"classroom-booking/pkg/timeslot"
	"classroom-booking/pkg/utils"

	"go.uber.org/zap"
)

type ResourceService interface {
	// ListAvailable returns the identifiers of resources free for the
	// whole [start, end) window on the given date, ascending by name.
	ListAvailable(ctx context.Context, req *request.AvailabilityRequest) ([]string, error)
	ListResources(ctx context.Context, kind entity.ResourceKind, floor string) ([]response.ResourceResponse, error)

	// DaySchedule is the anonymous read-only dashboard: everything booked
	// on a date, without owner identities.
	DaySchedule(ctx context.Context, req *request.DayScheduleRequest) (*response.DayScheduleResponse, error)
}

type resourceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewResourceService(repo *repository.Repository, log *zap.Logger) ResourceService {
	return &resourceService{
		repo: repo,
		log:  log.With(zap.String("service", "resource")),
	}
}

func (s *resourceService) ListAvailable(ctx context.Context, req *request.AvailabilityRequest) ([]string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List available validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	start, err := timeslot.ParseTimeOfDay(req.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %s: %w", req.Start, err)
	}
	end, err := timeslot.ParseTimeOfDay(req.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %s: %w", req.End, err)
	}
	if start >= end {
		return nil, fmt.Errorf("%s to %s: %w", req.Start, req.End, apperrors.ErrInvalidRange)
	}

	kind := entity.ResourceKind(req.Kind)

	// Floor filtering only exists for classrooms; labs are one flat list.
	floor := ""
	if kind == entity.KindClassroom {
		floor = req.Floor
	}

	resources, err := s.repo.Resource.FindByKind(ctx, kind, floor)
	if err != nil {
		return nil, err
	}

	booked, err := s.repo.Booking.FindByDate(ctx, kind, req.Date, floor)
	if err != nil {
		return nil, err
	}

	// Index existing bookings per resource, then keep only resources
	// with no overlapping slot. Same predicate the ledger enforces at
	// write time, so read and write never disagree on "free".
	slots := make(map[string][]*entity.Booking)
	for _, b := range booked {
		slots[b.Resource] = append(slots[b.Resource], b)
	}

	available := make([]string, 0, len(resources))
	for _, resource := range resources {
		free := true
		for _, b := range slots[resource.Name] {
			if timeslot.Overlaps(b.Start, b.End, start, end) {
				free = false
				break
			}
		}
		if free {
			available = append(available, resource.Name)
		}
	}

	s.log.Info("Availability computed",
		zap.String("kind", req.Kind),
		zap.String("date", req.Date),
		zap.String("slot", start.String()+"-"+end.String()),
		zap.Int("available", len(available)),
		zap.Int("total", len(resources)),
	)

	return available, nil
}

func (s *resourceService) ListResources(ctx context.Context, kind entity.ResourceKind, floor string) ([]response.ResourceResponse, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown resource kind %q: %w", kind, apperrors.ErrNotFound)
	}

	resources, err := s.repo.Resource.FindByKind(ctx, kind, floor)
	if err != nil {
		return nil, err
	}

	return response.ResourcesToResponse(resources), nil
}

func (s *resourceService) DaySchedule(ctx context.Context, req *request.DayScheduleRequest) (*response.DayScheduleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	classrooms, err := s.repo.Booking.FindByDate(ctx, entity.KindClassroom, req.Date, req.Floor)
	if err != nil {
		return nil, err
	}

	// Labs are never filtered by floor on the dashboard.
	labs, err := s.repo.Booking.FindByDate(ctx, entity.KindLab, req.Date, "")
	if err != nil {
		return nil, err
	}

	schedule := &response.DayScheduleResponse{
		Date:       req.Date,
		Floor:      req.Floor,
		Classrooms: scheduleEntries(classrooms, req.Date),
		Labs:       scheduleEntries(labs, req.Date),
	}

	return schedule, nil
}

// scheduleEntries strips owner identities and hides slots that already
// ended when the requested date is today.
func scheduleEntries(bookings []*entity.Booking, date string) []response.ScheduleEntry {
	today := time.Now().Format("2006-01-02")
	now := time.Now()
	nowMin := timeslot.TimeOfDay(now.Hour()*60 + now.Minute())

	entries := make([]response.ScheduleEntry, 0, len(bookings))
	for _, b := range bookings {
		if date < today {
			continue
		}
		if date == today && b.End <= nowMin {
			continue
		}
		entries = append(entries, response.ScheduleEntry{
			Resource:    b.Resource,
			Start:       b.Start.String(),
			End:         b.End.String(),
			Description: b.Description,
		})
	}
	return entries
}
