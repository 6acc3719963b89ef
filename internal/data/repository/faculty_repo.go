package repository

import (
	"context"
	"errors"
	"fmt"

	"classroom-booking/internal/data/entity"
	"classroom-booking/pkg/apperrors"
	"classroom-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type FacultyRepository interface {
	Create(ctx context.Context, faculty *entity.Faculty) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Faculty, error)
	FindByUsername(ctx context.Context, username string) (*entity.Faculty, error)
}

type facultyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFacultyRepository(db database.PgxIface, log *zap.Logger) FacultyRepository {
	return &facultyRepository{
		db:  db,
		log: log.With(zap.String("repository", "faculty")),
	}
}

func (r *facultyRepository) Create(ctx context.Context, faculty *entity.Faculty) error {
	query := `
		INSERT INTO faculty (id, name, username, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		faculty.ID,
		faculty.Name,
		faculty.Username,
		faculty.PasswordHash,
		faculty.Role,
		faculty.CreatedAt,
		faculty.UpdatedAt,
	)

	if err != nil {
		// A duplicate username is an expected outcome, not a storage
		// failure; classify it so the caller can say so.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("username %s: %w", faculty.Username, apperrors.ErrAlreadyExists)
		}

		r.log.Error("Failed to create faculty account",
			zap.Error(err),
			zap.String("username", faculty.Username),
		)
		return fmt.Errorf("create faculty %s: %w: %w", faculty.Username, apperrors.ErrStorage, err)
	}

	return nil
}

func (r *facultyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Faculty, error) {
	query := `
		SELECT id, name, username, password, role, created_at, updated_at
		FROM faculty
		WHERE id = $1
	`

	var faculty entity.Faculty
	err := r.db.QueryRow(ctx, query, id).Scan(
		&faculty.ID,
		&faculty.Name,
		&faculty.Username,
		&faculty.PasswordHash,
		&faculty.Role,
		&faculty.CreatedAt,
		&faculty.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find faculty by ID",
			zap.Error(err),
			zap.String("faculty_id", id.String()),
		)
		return nil, fmt.Errorf("find faculty by ID %s: %w: %w", id.String(), apperrors.ErrStorage, err)
	}

	return &faculty, nil
}

func (r *facultyRepository) FindByUsername(ctx context.Context, username string) (*entity.Faculty, error) {
	query := `
		SELECT id, name, username, password, role, created_at, updated_at
		FROM faculty
		WHERE username = $1
	`

	var faculty entity.Faculty
	err := r.db.QueryRow(ctx, query, username).Scan(
		&faculty.ID,
		&faculty.Name,
		&faculty.Username,
		&faculty.PasswordHash,
		&faculty.Role,
		&faculty.CreatedAt,
		&faculty.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find faculty by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find faculty by username %s: %w: %w", username, apperrors.ErrStorage, err)
	}

	return &faculty, nil
}
