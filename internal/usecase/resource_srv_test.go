package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/dto/request"
	"classroom-booking/pkg/apperrors"

	"go.uber.org/zap"
)

func availabilityReq(kind, floor, date, start, end string) *request.AvailabilityRequest {
	return &request.AvailabilityRequest{
		Kind:  kind,
		Floor: floor,
		Date:  date,
		Start: start,
		End:   end,
	}
}

func newResourceFixture(t *testing.T) (*testRepos, ResourceService, BookingService) {
	t.Helper()

	repos := newTestRepos()
	for _, name := range []string{"R101", "R102", "R201"} {
		floor := name[1:2]
		repos.catalog.add(entity.KindClassroom, name, floor)
		repos.bookings.addResource(entity.KindClassroom, name, floor)
	}
	repos.catalog.add(entity.KindLab, "CS Lab", "")
	repos.bookings.addResource(entity.KindLab, "CS Lab", "")

	log := zap.NewNop()
	return repos, NewResourceService(repos.repo, log), NewBookingService(repos.repo, log)
}

func TestListAvailableFiltersBookedSlots(t *testing.T) {
	t.Parallel()

	_, resources, bookings := newResourceFixture(t)
	ctx := context.Background()
	date := futureDate(7)

	if _, err := bookings.Create(ctx, teacher, bookingReq("R101", date, "09:00", "10:00")); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	// Overlapping window: R101 is out.
	got, err := resources.ListAvailable(ctx, availabilityReq("classroom", "", date, "09:30", "10:30"))
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if want := []string{"R102", "R201"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ListAvailable = %v, want %v", got, want)
	}

	// Touching window: [10:00, 11:00) starts where the booking ends.
	got, err = resources.ListAvailable(ctx, availabilityReq("classroom", "", date, "10:00", "11:00"))
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if want := []string{"R101", "R102", "R201"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ListAvailable = %v, want %v", got, want)
	}
}

func TestListAvailableFloorFilter(t *testing.T) {
	t.Parallel()

	_, resources, _ := newResourceFixture(t)

	got, err := resources.ListAvailable(context.Background(),
		availabilityReq("classroom", "2", futureDate(7), "09:00", "10:00"))
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if want := []string{"R201"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ListAvailable floor 2 = %v, want %v", got, want)
	}
}

func TestListAvailableInvalidRange(t *testing.T) {
	t.Parallel()

	_, resources, _ := newResourceFixture(t)

	for _, window := range [][2]string{{"11:00", "10:00"}, {"10:00", "10:00"}} {
		_, err := resources.ListAvailable(context.Background(),
			availabilityReq("classroom", "", futureDate(7), window[0], window[1]))
		if !errors.Is(err, apperrors.ErrInvalidRange) {
			t.Errorf("ListAvailable(%s-%s) error = %v, want ErrInvalidRange", window[0], window[1], err)
		}
	}
}

// Availability is a pure read: asking twice without intervening writes
// returns identical answers.
func TestListAvailableIsReadOnly(t *testing.T) {
	t.Parallel()

	repos, resources, bookings := newResourceFixture(t)
	ctx := context.Background()
	date := futureDate(7)

	if _, err := bookings.Create(ctx, teacher, bookingReq("R101", date, "09:00", "10:00")); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	writesBefore := repos.bookings.writes

	first, err := resources.ListAvailable(ctx, availabilityReq("classroom", "", date, "09:00", "10:00"))
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	second, err := resources.ListAvailable(ctx, availabilityReq("classroom", "", date, "09:00", "10:00"))
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated availability query diverged: %v then %v", first, second)
	}
	if repos.bookings.writes != writesBefore {
		t.Errorf("availability query wrote to the ledger: %d writes", repos.bookings.writes-writesBefore)
	}
}

func TestListResources(t *testing.T) {
	t.Parallel()

	_, resources, _ := newResourceFixture(t)

	got, err := resources.ListResources(context.Background(), entity.KindClassroom, "")
	if err != nil {
		t.Fatalf("ListResources: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListResources returned %d classrooms, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Name > got[i].Name {
			t.Errorf("resources not sorted by name: %q before %q", got[i-1].Name, got[i].Name)
		}
	}

	if _, err := resources.ListResources(context.Background(), entity.ResourceKind("garage"), ""); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("unknown kind error = %v, want ErrNotFound", err)
	}
}

func TestDayScheduleHidesOwners(t *testing.T) {
	t.Parallel()

	_, resources, bookings := newResourceFixture(t)
	ctx := context.Background()
	date := futureDate(7)

	if _, err := bookings.Create(ctx, teacher, bookingReq("R101", date, "09:00", "10:00")); err != nil {
		t.Fatalf("classroom booking: %v", err)
	}
	labReq := bookingReq("CS Lab", date, "13:00", "15:00")
	labReq.Kind = string(entity.KindLab)
	if _, err := bookings.Create(ctx, teacher, labReq); err != nil {
		t.Fatalf("lab booking: %v", err)
	}

	schedule, err := resources.DaySchedule(ctx, &request.DayScheduleRequest{Date: date})
	if err != nil {
		t.Fatalf("DaySchedule: %v", err)
	}

	if len(schedule.Classrooms) != 1 || len(schedule.Labs) != 1 {
		t.Fatalf("schedule = %d classrooms, %d labs; want 1 and 1",
			len(schedule.Classrooms), len(schedule.Labs))
	}

	entry := schedule.Classrooms[0]
	if entry.Resource != "R101" || entry.Start != "09:00" || entry.End != "10:00" {
		t.Errorf("classroom entry = %+v", entry)
	}
	if schedule.Labs[0].Resource != "CS Lab" {
		t.Errorf("lab entry = %+v", schedule.Labs[0])
	}
}
