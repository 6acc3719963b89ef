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

type ResourceRepository interface {
	FindByKind(ctx context.Context, kind entity.ResourceKind, floor string) ([]*entity.Resource, error)
	FindByName(ctx context.Context, kind entity.ResourceKind, name string) (*entity.Resource, error)
}

type resourceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResourceRepository(db database.PgxIface, log *zap.Logger) ResourceRepository {
	return &resourceRepository{
		db:  db,
		log: log.With(zap.String("repository", "resource")),
	}
}

func (r *resourceRepository) FindByKind(ctx context.Context, kind entity.ResourceKind, floor string) ([]*entity.Resource, error) {
	query := `SELECT name, floor FROM ` + resourceTable(kind) + ` ORDER BY name ASC`
	args := []any{}

	if floor != "" {
		query = `SELECT name, floor FROM ` + resourceTable(kind) + ` WHERE floor = $1 ORDER BY name ASC`
		args = append(args, floor)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query resources",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("floor", floor),
		)
		return nil, fmt.Errorf("query %s resources: %w: %w", kind, apperrors.ErrStorage, err)
	}
	defer rows.Close()

	var resources []*entity.Resource
	for rows.Next() {
		resource := entity.Resource{Kind: kind}
		if err := rows.Scan(&resource.Name, &resource.Floor); err != nil {
			r.log.Error("Failed to scan resource row", zap.Error(err))
			return nil, fmt.Errorf("scan resource row: %w: %w", apperrors.ErrStorage, err)
		}
		resources = append(resources, &resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read resource rows: %w: %w", apperrors.ErrStorage, err)
	}

	return resources, nil
}

func (r *resourceRepository) FindByName(ctx context.Context, kind entity.ResourceKind, name string) (*entity.Resource, error) {
	query := `SELECT name, floor FROM ` + resourceTable(kind) + ` WHERE name = $1`

	resource := entity.Resource{Kind: kind}
	err := r.db.QueryRow(ctx, query, name).Scan(&resource.Name, &resource.Floor)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find resource by name",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find %s %s: %w: %w", kind, name, apperrors.ErrStorage, err)
	}

	return &resource, nil
}
