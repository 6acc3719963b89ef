package repository

import (
	"context"
	"fmt"

	"classroom-booking/internal/data/entity"
	"classroom-booking/pkg/apperrors"
	"classroom-booking/pkg/database"
	"classroom-booking/pkg/timeslot"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateWithConflictCheck inserts the booking after re-checking
	// availability inside one transaction. Assigns ID and CreatedAt.
	CreateWithConflictCheck(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, kind entity.ResourceKind, id int64) error
	FindByID(ctx context.Context, kind entity.ResourceKind, id int64) (*entity.Booking, error)
	FindByOwner(ctx context.Context, kind entity.ResourceKind, owner string, includeHistorical bool) ([]*entity.Booking, error)
	FindAllUpcoming(ctx context.Context, kind entity.ResourceKind) ([]*entity.Booking, error)
	FindByDate(ctx context.Context, kind entity.ResourceKind, date string, floor string) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateWithConflictCheck(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking tx: %w: %w", apperrors.ErrStorage, err)
	}
	defer tx.Rollback(ctx)

	// Lock the resource row so concurrent writers for the same room are
	// serialized. Locking existing booking rows would not stop a phantom
	// insert from a second transaction.
	var floor string
	err = tx.QueryRow(ctx,
		`SELECT floor FROM `+resourceTable(booking.Kind)+` WHERE name = $1 FOR UPDATE`,
		booking.Resource,
	).Scan(&floor)

	if err == pgx.ErrNoRows {
		return fmt.Errorf("%s %s: %w", booking.Kind, booking.Resource, apperrors.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to lock resource row",
			zap.Error(err),
			zap.String("resource", booking.Resource),
		)
		return fmt.Errorf("lock resource %s: %w: %w", booking.Resource, apperrors.ErrStorage, err)
	}
	booking.Floor = floor

	// Re-check availability inside the transaction to close the race
	// between the read-side check and the insert.
	query := `
		SELECT start_min, end_min
		FROM ` + bookingTable(booking.Kind) + `
		WHERE resource_name = $1 AND date = $2
	`

	rows, err := tx.Query(ctx, query, booking.Resource, booking.Date)
	if err != nil {
		r.log.Error("Failed to scan existing bookings",
			zap.Error(err),
			zap.String("resource", booking.Resource),
		)
		return fmt.Errorf("check availability for %s: %w: %w", booking.Resource, apperrors.ErrStorage, err)
	}

	type slot struct{ start, end timeslot.TimeOfDay }
	var existing []slot
	for rows.Next() {
		var s slot
		if err := rows.Scan(&s.start, &s.end); err != nil {
			rows.Close()
			return fmt.Errorf("scan booking slot: %w: %w", apperrors.ErrStorage, err)
		}
		existing = append(existing, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read booking slots: %w: %w", apperrors.ErrStorage, err)
	}

	for _, s := range existing {
		if timeslot.Overlaps(s.start, s.end, booking.Start, booking.End) {
			r.log.Warn("Booking conflict detected",
				zap.String("resource", booking.Resource),
				zap.String("date", booking.Date.Format("2006-01-02")),
				zap.String("requested", booking.Start.String()+"-"+booking.End.String()),
				zap.String("existing", s.start.String()+"-"+s.end.String()),
			)
			return fmt.Errorf("%s %s on %s from %s to %s: %w",
				booking.Kind, booking.Resource, booking.Date.Format("2006-01-02"),
				booking.Start, booking.End, apperrors.ErrConflict)
		}
	}

	insert := `
		INSERT INTO ` + bookingTable(booking.Kind) + `
			(username, resource_name, floor, date, start_min, end_min, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err = tx.QueryRow(ctx, insert,
		booking.Owner,
		booking.Resource,
		booking.Floor,
		booking.Date,
		booking.Start,
		booking.End,
		booking.Description,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("resource", booking.Resource),
			zap.String("owner", booking.Owner),
		)
		return fmt.Errorf("insert booking for %s: %w: %w", booking.Resource, apperrors.ErrStorage, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction", zap.Error(err))
		return fmt.Errorf("commit booking tx: %w: %w", apperrors.ErrStorage, err)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, kind entity.ResourceKind, id int64) error {
	query := `DELETE FROM ` + bookingTable(kind) + ` WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
			zap.String("kind", string(kind)),
		)
		return fmt.Errorf("delete %s booking %d: %w: %w", kind, id, apperrors.ErrStorage, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s booking %d: %w", kind, id, apperrors.ErrNotFound)
	}

	r.log.Info("Booking deleted",
		zap.Int64("booking_id", id),
		zap.String("kind", string(kind)),
	)
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, kind entity.ResourceKind, id int64) (*entity.Booking, error) {
	query := `
		SELECT id, username, resource_name, floor, date, start_min, end_min, description, created_at
		FROM ` + bookingTable(kind) + `
		WHERE id = $1
	`

	booking := entity.Booking{Kind: kind}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.Owner,
		&booking.Resource,
		&booking.Floor,
		&booking.Date,
		&booking.Start,
		&booking.End,
		&booking.Description,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find %s booking %d: %w: %w", kind, id, apperrors.ErrStorage, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByOwner(ctx context.Context, kind entity.ResourceKind, owner string, includeHistorical bool) ([]*entity.Booking, error) {
	var query string
	var args []any

	if includeHistorical {
		query = `
			SELECT id, username, resource_name, floor, date, start_min, end_min, description, created_at
			FROM ` + bookingTable(kind) + `
			WHERE username = $1
			ORDER BY date DESC, start_min DESC
		`
		args = []any{owner}
	} else {
		query = `
			SELECT id, username, resource_name, floor, date, start_min, end_min, description, created_at
			FROM ` + bookingTable(kind) + `
			WHERE username = $1
			  AND (date > CURRENT_DATE OR (date = CURRENT_DATE AND end_min > $2))
			ORDER BY date ASC, start_min ASC
		`
		args = []any{owner, nowMinutes()}
	}

	return r.queryBookings(ctx, kind, query, args...)
}

// FindAllUpcoming returns upcoming bookings for every owner; the admin
// approval view needs the full lab ledger, not just the caller's rows.
func (r *bookingRepository) FindAllUpcoming(ctx context.Context, kind entity.ResourceKind) ([]*entity.Booking, error) {
	query := `
		SELECT id, username, resource_name, floor, date, start_min, end_min, description, created_at
		FROM ` + bookingTable(kind) + `
		WHERE date > CURRENT_DATE OR (date = CURRENT_DATE AND end_min > $1)
		ORDER BY date ASC, start_min ASC
	`

	return r.queryBookings(ctx, kind, query, nowMinutes())
}

func (r *bookingRepository) FindByDate(ctx context.Context, kind entity.ResourceKind, date string, floor string) ([]*entity.Booking, error) {
	query := `
		SELECT id, username, resource_name, floor, date, start_min, end_min, description, created_at
		FROM ` + bookingTable(kind) + `
		WHERE date = $1
		ORDER BY start_min ASC
	`
	args := []any{date}

	if floor != "" {
		query = `
			SELECT id, username, resource_name, floor, date, start_min, end_min, description, created_at
			FROM ` + bookingTable(kind) + `
			WHERE date = $1 AND floor = $2
			ORDER BY start_min ASC
		`
		args = append(args, floor)
	}

	return r.queryBookings(ctx, kind, query, args...)
}

func (r *bookingRepository) queryBookings(ctx context.Context, kind entity.ResourceKind, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings",
			zap.Error(err),
			zap.String("kind", string(kind)),
		)
		return nil, fmt.Errorf("query %s bookings: %w: %w", kind, apperrors.ErrStorage, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking := entity.Booking{Kind: kind}
		err := rows.Scan(
			&booking.ID,
			&booking.Owner,
			&booking.Resource,
			&booking.Floor,
			&booking.Date,
			&booking.Start,
			&booking.End,
			&booking.Description,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w: %w", apperrors.ErrStorage, err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read booking rows: %w: %w", apperrors.ErrStorage, err)
	}

	return bookings, nil
}
