package repository

import (
	"context"
	"fmt"

	"classroom-booking/internal/data/entity"
	"classroom-booking/pkg/apperrors"
	"classroom-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CancellationRepository interface {
	// Create inserts a Pending request. Assigns ID and CreatedAt.
	Create(ctx context.Context, req *entity.CancellationRequest) error
	FindByID(ctx context.Context, kind entity.ResourceKind, id int64) (*entity.CancellationRequest, error)
	FindPending(ctx context.Context, kind entity.ResourceKind) ([]*entity.CancellationRequest, error)
	// UpdateStatusIfPending transitions the request out of Pending and
	// reports whether a row actually changed. A false result means the
	// request was already resolved by a concurrent admin.
	UpdateStatusIfPending(ctx context.Context, kind entity.ResourceKind, id int64, status entity.CancellationStatus) (bool, error)
}

type cancellationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCancellationRepository(db database.PgxIface, log *zap.Logger) CancellationRepository {
	return &cancellationRepository{
		db:  db,
		log: log.With(zap.String("repository", "cancellation")),
	}
}

func (r *cancellationRepository) Create(ctx context.Context, req *entity.CancellationRequest) error {
	query := `
		INSERT INTO ` + cancellationTable(req.Kind) + ` (booking_id, teacher_username, reason, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		req.BookingID,
		req.Requester,
		req.Reason,
		entity.CancellationStatusPending,
	).Scan(&req.ID, &req.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create cancellation request",
			zap.Error(err),
			zap.Int64("booking_id", req.BookingID),
			zap.String("requester", req.Requester),
		)
		return fmt.Errorf("create cancellation request for booking %d: %w: %w",
			req.BookingID, apperrors.ErrStorage, err)
	}

	req.Status = entity.CancellationStatusPending
	return nil
}

func (r *cancellationRepository) FindByID(ctx context.Context, kind entity.ResourceKind, id int64) (*entity.CancellationRequest, error) {
	query := `
		SELECT id, booking_id, teacher_username, reason, status, created_at
		FROM ` + cancellationTable(kind) + `
		WHERE id = $1
	`

	req := entity.CancellationRequest{Kind: kind}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.BookingID,
		&req.Requester,
		&req.Reason,
		&req.Status,
		&req.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cancellation request",
			zap.Error(err),
			zap.Int64("request_id", id),
		)
		return nil, fmt.Errorf("find %s cancellation request %d: %w: %w", kind, id, apperrors.ErrStorage, err)
	}

	return &req, nil
}

func (r *cancellationRepository) FindPending(ctx context.Context, kind entity.ResourceKind) ([]*entity.CancellationRequest, error) {
	query := `
		SELECT id, booking_id, teacher_username, reason, status, created_at
		FROM ` + cancellationTable(kind) + `
		WHERE status = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, entity.CancellationStatusPending)
	if err != nil {
		r.log.Error("Failed to query pending cancellation requests",
			zap.Error(err),
			zap.String("kind", string(kind)),
		)
		return nil, fmt.Errorf("query pending %s cancellations: %w: %w", kind, apperrors.ErrStorage, err)
	}
	defer rows.Close()

	var requests []*entity.CancellationRequest
	for rows.Next() {
		req := entity.CancellationRequest{Kind: kind}
		err := rows.Scan(
			&req.ID,
			&req.BookingID,
			&req.Requester,
			&req.Reason,
			&req.Status,
			&req.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan cancellation request row", zap.Error(err))
			return nil, fmt.Errorf("scan cancellation request row: %w: %w", apperrors.ErrStorage, err)
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read cancellation request rows: %w: %w", apperrors.ErrStorage, err)
	}

	return requests, nil
}

func (r *cancellationRepository) UpdateStatusIfPending(ctx context.Context, kind entity.ResourceKind, id int64, status entity.CancellationStatus) (bool, error) {
	query := `
		UPDATE ` + cancellationTable(kind) + `
		SET status = $2
		WHERE id = $1 AND status = $3
	`

	result, err := r.db.Exec(ctx, query, id, status, entity.CancellationStatusPending)
	if err != nil {
		r.log.Error("Failed to update cancellation request status",
			zap.Error(err),
			zap.Int64("request_id", id),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update cancellation request %d to %s: %w: %w",
			id, status, apperrors.ErrStorage, err)
	}

	return result.RowsAffected() > 0, nil
}
