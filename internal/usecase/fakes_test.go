package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/data/repository"
	"classroom-booking/pkg/apperrors"
	"classroom-booking/pkg/timeslot"
)

// In-memory repository fakes. They enforce the same contracts the
// Postgres implementations do (conflict checking inside Create, nil for
// missing rows, conditional status updates) so the services can be
// tested without a database.

type fakeBookingRepo struct {
	mu        sync.Mutex
	nextID    int64
	resources map[entity.ResourceKind]map[string]string
	bookings  map[entity.ResourceKind]map[int64]*entity.Booking
	writes    int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		resources: map[entity.ResourceKind]map[string]string{
			entity.KindClassroom: {},
			entity.KindLab:       {},
		},
		bookings: map[entity.ResourceKind]map[int64]*entity.Booking{
			entity.KindClassroom: {},
			entity.KindLab:       {},
		},
	}
}

func (f *fakeBookingRepo) addResource(kind entity.ResourceKind, name, floor string) {
	f.resources[kind][name] = floor
}

func (f *fakeBookingRepo) CreateWithConflictCheck(_ context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++

	floor, ok := f.resources[booking.Kind][booking.Resource]
	if !ok {
		return fmt.Errorf("%s %s: %w", booking.Kind, booking.Resource, apperrors.ErrNotFound)
	}

	date := booking.Date.Format("2006-01-02")
	for _, existing := range f.bookings[booking.Kind] {
		if existing.Resource != booking.Resource || existing.Date.Format("2006-01-02") != date {
			continue
		}
		if timeslot.Overlaps(existing.Start, existing.End, booking.Start, booking.End) {
			return fmt.Errorf("%s on %s %s-%s: %w",
				booking.Resource, date, booking.Start, booking.End, apperrors.ErrConflict)
		}
	}

	f.nextID++
	booking.ID = f.nextID
	booking.Floor = floor
	booking.CreatedAt = time.Now()

	stored := *booking
	f.bookings[booking.Kind][booking.ID] = &stored
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, kind entity.ResourceKind, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.bookings[kind][id]; !ok {
		return fmt.Errorf("%s booking %d: %w", kind, id, apperrors.ErrNotFound)
	}
	delete(f.bookings[kind], id)
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, kind entity.ResourceKind, id int64) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[kind][id]
	if !ok {
		return nil, nil
	}
	found := *b
	return &found, nil
}

func (f *fakeBookingRepo) FindByOwner(_ context.Context, kind entity.ResourceKind, owner string, includeHistorical bool) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	var out []*entity.Booking
	for _, b := range f.bookings[kind] {
		if b.Owner != owner {
			continue
		}
		if !includeHistorical && b.Date.Format("2006-01-02") < today {
			continue
		}
		found := *b
		out = append(out, &found)
	}
	sortBookings(out, includeHistorical)
	return out, nil
}

func (f *fakeBookingRepo) FindAllUpcoming(_ context.Context, kind entity.ResourceKind) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	var out []*entity.Booking
	for _, b := range f.bookings[kind] {
		if b.Date.Format("2006-01-02") < today {
			continue
		}
		found := *b
		out = append(out, &found)
	}
	sortBookings(out, false)
	return out, nil
}

func (f *fakeBookingRepo) FindByDate(_ context.Context, kind entity.ResourceKind, date string, floor string) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Booking
	for _, b := range f.bookings[kind] {
		if b.Date.Format("2006-01-02") != date {
			continue
		}
		if floor != "" && b.Floor != floor {
			continue
		}
		found := *b
		out = append(out, &found)
	}
	sortBookings(out, false)
	return out, nil
}

func sortBookings(bookings []*entity.Booking, descending bool) {
	sort.Slice(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if descending {
			a, b = b, a
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Start < b.Start
	})
}

type fakeCancellationRepo struct {
	mu       sync.Mutex
	nextID   int64
	requests map[entity.ResourceKind]map[int64]*entity.CancellationRequest
}

func newFakeCancellationRepo() *fakeCancellationRepo {
	return &fakeCancellationRepo{
		requests: map[entity.ResourceKind]map[int64]*entity.CancellationRequest{
			entity.KindClassroom: {},
			entity.KindLab:       {},
		},
	}
}

func (f *fakeCancellationRepo) Create(_ context.Context, req *entity.CancellationRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	req.ID = f.nextID
	req.Status = entity.CancellationStatusPending
	req.CreatedAt = time.Now()

	stored := *req
	f.requests[req.Kind][req.ID] = &stored
	return nil
}

func (f *fakeCancellationRepo) FindByID(_ context.Context, kind entity.ResourceKind, id int64) (*entity.CancellationRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.requests[kind][id]
	if !ok {
		return nil, nil
	}
	found := *req
	return &found, nil
}

func (f *fakeCancellationRepo) FindPending(_ context.Context, kind entity.ResourceKind) ([]*entity.CancellationRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.CancellationRequest
	for _, req := range f.requests[kind] {
		if req.Status != entity.CancellationStatusPending {
			continue
		}
		found := *req
		out = append(out, &found)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCancellationRepo) UpdateStatusIfPending(_ context.Context, kind entity.ResourceKind, id int64, status entity.CancellationStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.requests[kind][id]
	if !ok || req.Status != entity.CancellationStatusPending {
		return false, nil
	}
	req.Status = status
	return true, nil
}

type fakeResourceRepo struct {
	resources []*entity.Resource
}

func (f *fakeResourceRepo) add(kind entity.ResourceKind, name, floor string) {
	f.resources = append(f.resources, &entity.Resource{Name: name, Kind: kind, Floor: floor})
}

func (f *fakeResourceRepo) FindByKind(_ context.Context, kind entity.ResourceKind, floor string) ([]*entity.Resource, error) {
	var out []*entity.Resource
	for _, r := range f.resources {
		if r.Kind != kind {
			continue
		}
		if floor != "" && r.Floor != floor {
			continue
		}
		found := *r
		out = append(out, &found)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeResourceRepo) FindByName(_ context.Context, kind entity.ResourceKind, name string) (*entity.Resource, error) {
	for _, r := range f.resources {
		if r.Kind == kind && r.Name == name {
			found := *r
			return &found, nil
		}
	}
	return nil, nil
}

type testRepos struct {
	repo     *repository.Repository
	bookings *fakeBookingRepo
	cancels  *fakeCancellationRepo
	catalog  *fakeResourceRepo
}

func newTestRepos() *testRepos {
	bookings := newFakeBookingRepo()
	cancels := newFakeCancellationRepo()
	catalog := &fakeResourceRepo{}
	return &testRepos{
		repo: &repository.Repository{
			Resource:     catalog,
			Booking:      bookings,
			Cancellation: cancels,
		},
		bookings: bookings,
		cancels:  cancels,
		catalog:  catalog,
	}
}
