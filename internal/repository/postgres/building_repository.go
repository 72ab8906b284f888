package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/org-directory/internal/domain"
	"github.com/org-directory/internal/domain/repository"
	"github.com/org-directory/internal/pkg/errors"
)

type buildingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBuildingRepository(db *DB) repository.BuildingRepository {
	return &buildingRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Координаты отдаются текстом: NUMERIC не должен терять точность в float64
const buildingColumns = `id, address, latitude::text AS latitude, longitude::text AS longitude, created_at, updated_at`

func (r *buildingRepository) Create(ctx context.Context, address, latitude, longitude string) (*domain.Building, error) {
	query := `
		INSERT INTO buildings (id, address, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + buildingColumns

	var building domain.Building
	if err := r.db.GetContext(ctx, &building, query, uuid.New(), address, latitude, longitude); err != nil {
		return nil, translateWriteError(err)
	}
	return &building, nil
}

func (r *buildingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings WHERE id = $1`

	var building domain.Building
	err := r.db.GetContext(ctx, &building, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrBuildingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get building", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &building, nil
}

func (r *buildingRepository) List(ctx context.Context, ids []uuid.UUID, idsSet bool, limit, offset int) ([]*domain.Building, int, error) {
	where := ``
	args := []interface{}{}
	argIdx := 1

	if idsSet {
		where = ` WHERE id = ANY($1::uuid[])`
		args = append(args, pq.Array(uuidStrings(ids)))
		argIdx++
	}

	var total int
	countQuery := `SELECT count(*) FROM buildings` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.logger.Error("Failed to count buildings", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `SELECT ` + buildingColumns + ` FROM buildings` + where +
		fmt.Sprintf(` ORDER BY address LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, limit, offset)

	var buildings []*domain.Building
	if err := r.db.SelectContext(ctx, &buildings, query, args...); err != nil {
		r.logger.Error("Failed to list buildings", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	return buildings, total, nil
}

func (r *buildingRepository) ListAll(ctx context.Context) ([]*domain.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings`

	var buildings []*domain.Building
	if err := r.db.SelectContext(ctx, &buildings, query); err != nil {
		r.logger.Error("Failed to load buildings for geo scan", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return buildings, nil
}

func (r *buildingRepository) Update(ctx context.Context, id uuid.UUID, update domain.BuildingUpdate) (*domain.Building, error) {
	query := `
		UPDATE buildings
		SET address   = COALESCE($2, address),
		    latitude  = COALESCE($3, latitude),
		    longitude = COALESCE($4, longitude),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + buildingColumns

	var building domain.Building
	err := r.db.GetContext(ctx, &building, query, id, update.Address, update.Latitude, update.Longitude)
	if err == sql.ErrNoRows {
		return nil, errors.ErrBuildingNotFound
	}
	if err != nil {
		return nil, translateWriteError(err)
	}
	return &building, nil
}

func (r *buildingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM buildings WHERE id = $1`, id)
	if err != nil {
		// RESTRICT со стороны организаций
		return translateDeleteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrBuildingNotFound
	}
	return nil
}
