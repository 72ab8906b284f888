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

type organizationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewOrganizationRepository(db *DB) repository.OrganizationRepository {
	return &organizationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const organizationColumns = `id, name, building_id, created_at, updated_at`

func (r *organizationRepository) Create(ctx context.Context, create domain.OrganizationCreate) (uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return uuid.Nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	orgID := uuid.New()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO organizations (id, name, building_id) VALUES ($1, $2, $3)`,
		orgID, create.Name, create.BuildingID)
	if err != nil {
		return uuid.Nil, translateWriteError(err)
	}

	if err := insertPhones(ctx, tx, orgID, create.Phones); err != nil {
		return uuid.Nil, err
	}
	if err := insertActivityLinks(ctx, tx, orgID, create.ActivityIDs); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit organization create", zap.Error(err))
		return uuid.Nil, errors.ErrDatabaseError
	}
	return orgID, nil
}

func (r *organizationRepository) GetDetail(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	var org domain.Organization
	err := r.db.GetContext(ctx, &org,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrOrganizationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get organization", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	var building domain.Building
	err = r.db.GetContext(ctx, &building,
		`SELECT `+buildingColumns+` FROM buildings WHERE id = $1`, org.BuildingID)
	if err != nil {
		r.logger.Error("Failed to get organization building", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	org.Building = &building

	phones, err := r.selectPhones(ctx, []uuid.UUID{org.ID})
	if err != nil {
		return nil, err
	}
	org.Phones = phones

	activities, err := r.selectLinkedActivities(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	org.Activities = activities

	return &org, nil
}

func (r *organizationRepository) List(ctx context.Context, filter domain.OrganizationFilter, limit, offset int) ([]*domain.Organization, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.BuildingID != nil {
		where += fmt.Sprintf(` AND o.building_id = $%d`, argIdx)
		args = append(args, *filter.BuildingID)
		argIdx++
	}
	if filter.ActivityID != nil {
		where += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM organizations_activities oa
			WHERE oa.organization_id = o.id AND oa.activity_id = $%d
		)`, argIdx)
		args = append(args, *filter.ActivityID)
		argIdx++
	}
	if filter.ActivityIDsSet {
		where += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM organizations_activities oa
			WHERE oa.organization_id = o.id AND oa.activity_id = ANY($%d::uuid[])
		)`, argIdx)
		args = append(args, pq.Array(uuidStrings(filter.ActivityIDs)))
		argIdx++
	}
	if filter.SearchName != nil {
		where += fmt.Sprintf(` AND o.name ILIKE '%%' || $%d || '%%'`, argIdx)
		args = append(args, *filter.SearchName)
		argIdx++
	}
	if filter.BuildingIDsSet {
		where += fmt.Sprintf(` AND o.building_id = ANY($%d::uuid[])`, argIdx)
		args = append(args, pq.Array(uuidStrings(filter.BuildingIDs)))
		argIdx++
	}

	var total int
	countQuery := `SELECT count(*) FROM organizations o` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.logger.Error("Failed to count organizations", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `SELECT o.id, o.name, o.building_id, o.created_at, o.updated_at FROM organizations o` +
		where + fmt.Sprintf(` ORDER BY o.name LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, limit, offset)

	var orgs []*domain.Organization
	if err := r.db.SelectContext(ctx, &orgs, query, args...); err != nil {
		r.logger.Error("Failed to list organizations", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	if len(orgs) > 0 {
		orgIDs := make([]uuid.UUID, 0, len(orgs))
		for _, o := range orgs {
			orgIDs = append(orgIDs, o.ID)
		}
		phones, err := r.selectPhones(ctx, orgIDs)
		if err != nil {
			return nil, 0, err
		}
		byOrg := make(map[uuid.UUID][]*domain.Phone, len(orgs))
		for _, p := range phones {
			byOrg[p.OrganizationID] = append(byOrg[p.OrganizationID], p)
		}
		for _, o := range orgs {
			o.Phones = byOrg[o.ID]
		}
	}

	return orgs, total, nil
}

func (r *organizationRepository) Update(ctx context.Context, id uuid.UUID, update domain.OrganizationUpdate) (uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return uuid.Nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	var orgID uuid.UUID
	err = tx.GetContext(ctx, &orgID, `
		UPDATE organizations
		SET name = COALESCE($2, name),
		    building_id = COALESCE($3, building_id),
		    updated_at = now()
		WHERE id = $1
		RETURNING id`,
		id, update.Name, update.BuildingID)
	if err == sql.ErrNoRows {
		return uuid.Nil, errors.ErrOrganizationNotFound
	}
	if err != nil {
		return uuid.Nil, translateWriteError(err)
	}

	// Переданные наборы полностью замещаются: удалить и вставить заново
	if update.Phones != nil {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM phones WHERE organization_id = $1`, orgID); err != nil {
			r.logger.Error("Failed to clear phones", zap.Error(err))
			return uuid.Nil, errors.ErrDatabaseError
		}
		if err := insertPhones(ctx, tx, orgID, update.Phones); err != nil {
			return uuid.Nil, err
		}
	}
	if update.ActivityIDs != nil {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM organizations_activities WHERE organization_id = $1`, orgID); err != nil {
			r.logger.Error("Failed to clear activity links", zap.Error(err))
			return uuid.Nil, errors.ErrDatabaseError
		}
		if err := insertActivityLinks(ctx, tx, orgID, update.ActivityIDs); err != nil {
			return uuid.Nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit organization update", zap.Error(err))
		return uuid.Nil, errors.ErrDatabaseError
	}
	return orgID, nil
}

func (r *organizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Телефоны и связи уходят каскадом
	result, err := r.db.ExecContext(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrOrganizationNotFound
	}
	return nil
}

func insertPhones(ctx context.Context, tx *sqlx.Tx, orgID uuid.UUID, phones []string) error {
	for _, phone := range phones {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO phones (id, organization_id, phone) VALUES ($1, $2, $3)`,
			uuid.New(), orgID, phone)
		if err != nil {
			return translateWriteError(err)
		}
	}
	return nil
}

func insertActivityLinks(ctx context.Context, tx *sqlx.Tx, orgID uuid.UUID, activityIDs []uuid.UUID) error {
	for _, activityID := range activityIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO organizations_activities (organization_id, activity_id) VALUES ($1, $2)`,
			orgID, activityID)
		if err != nil {
			return translateWriteError(err)
		}
	}
	return nil
}

func (r *organizationRepository) selectPhones(ctx context.Context, orgIDs []uuid.UUID) ([]*domain.Phone, error) {
	query := `
		SELECT id, organization_id, phone
		FROM phones
		WHERE organization_id = ANY($1::uuid[])
		ORDER BY phone
	`

	var phones []*domain.Phone
	if err := r.db.SelectContext(ctx, &phones, query, pq.Array(uuidStrings(orgIDs))); err != nil {
		r.logger.Error("Failed to select phones", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return phones, nil
}

// linkedActivityRow - активность организации с предками одним запросом
type linkedActivityRow struct {
	ID            uuid.UUID  `db:"id"`
	Name          string     `db:"name"`
	ParentID      *uuid.UUID `db:"parent_id"`
	PID           *uuid.UUID `db:"p_id"`
	PName         *string    `db:"p_name"`
	PParentID     *uuid.UUID `db:"p_parent_id"`
	GrandID       *uuid.UUID `db:"g_id"`
	GrandName     *string    `db:"g_name"`
	GrandParentID *uuid.UUID `db:"g_parent_id"`
}

// selectLinkedActivities загружает активности организации с цепочками
// предков, разрешёнными на два уровня вверх
func (r *organizationRepository) selectLinkedActivities(ctx context.Context, orgID uuid.UUID) ([]*domain.Activity, error) {
	query := `
		SELECT a.id, a.name, a.parent_id,
		       p.id AS p_id, p.name AS p_name, p.parent_id AS p_parent_id,
		       g.id AS g_id, g.name AS g_name, g.parent_id AS g_parent_id
		FROM organizations_activities oa
		JOIN activities a ON a.id = oa.activity_id
		LEFT JOIN activities p ON p.id = a.parent_id
		LEFT JOIN activities g ON g.id = p.parent_id
		WHERE oa.organization_id = $1
		ORDER BY a.name
	`

	var rows []linkedActivityRow
	if err := r.db.SelectContext(ctx, &rows, query, orgID); err != nil {
		r.logger.Error("Failed to select linked activities", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	activities := make([]*domain.Activity, 0, len(rows))
	for _, row := range rows {
		activity := &domain.Activity{
			ID:       row.ID,
			Name:     row.Name,
			ParentID: row.ParentID,
		}
		if row.PID != nil {
			activity.Parent = &domain.Activity{
				ID:       *row.PID,
				Name:     *row.PName,
				ParentID: row.PParentID,
			}
			if row.GrandID != nil {
				activity.Parent.Parent = &domain.Activity{
					ID:       *row.GrandID,
					Name:     *row.GrandName,
					ParentID: row.GrandParentID,
				}
			}
		}
		activities = append(activities, activity)
	}
	return activities, nil
}
