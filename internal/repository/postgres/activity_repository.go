package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/org-directory/internal/domain"
	"github.com/org-directory/internal/domain/repository"
	"github.com/org-directory/internal/pkg/errors"
)

type activityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewActivityRepository(db *DB) repository.ActivityRepository {
	return &activityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const activityColumns = `id, name, parent_id, created_at, updated_at`

func (r *activityRepository) Create(ctx context.Context, name string, parentID *uuid.UUID) (*domain.Activity, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		INSERT INTO activities (id, name, parent_id)
		VALUES ($1, $2, $3)
		RETURNING ` + activityColumns

	var activity domain.Activity
	if err := tx.GetContext(ctx, &activity, query, uuid.New(), name, parentID); err != nil {
		return nil, translateWriteError(err)
	}

	if err := r.resolveParentChain(ctx, tx, &activity); err != nil {
		return nil, err
	}

	// Нарушение глубины откатывает вставку целиком
	if activity.ExceedsDepthLimit() {
		return nil, errors.ErrDepthLimit
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit activity create", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &activity, nil
}

func (r *activityRepository) GetDetail(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	var activity domain.Activity
	err := r.db.GetContext(ctx, &activity, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrActivityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get activity", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.resolveParentChain(ctx, r.db, &activity); err != nil {
		return nil, err
	}

	if err := r.attachChildren(ctx, []*domain.Activity{&activity}); err != nil {
		return nil, err
	}

	return &activity, nil
}

func (r *activityRepository) ListRoots(ctx context.Context) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE parent_id IS NULL ORDER BY name`

	var roots []*domain.Activity
	if err := r.db.SelectContext(ctx, &roots, query); err != nil {
		r.logger.Error("Failed to list root activities", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.attachChildren(ctx, roots); err != nil {
		return nil, err
	}

	return roots, nil
}

func (r *activityRepository) Update(ctx context.Context, id uuid.UUID, update domain.ActivityUpdate) (*domain.Activity, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	var current domain.Activity
	err = tx.GetContext(ctx, &current,
		`SELECT `+activityColumns+` FROM activities WHERE id = $1 FOR UPDATE`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrActivityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to lock activity", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if update.ParentSet {
		var childCount int
		if err := tx.GetContext(ctx, &childCount,
			`SELECT count(*) FROM activities WHERE parent_id = $1`, id); err != nil {
			r.logger.Error("Failed to count children", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		if childCount > 0 {
			return nil, errors.ErrReparentWithChildren
		}
		if update.ParentID != nil && *update.ParentID == id {
			return nil, errors.ErrSelfParent
		}
	}

	name := current.Name
	if update.Name != nil {
		name = *update.Name
	}
	parentID := current.ParentID
	if update.ParentSet {
		parentID = update.ParentID
	}

	query := `
		UPDATE activities
		SET name = $2, parent_id = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + activityColumns

	var activity domain.Activity
	if err := tx.GetContext(ctx, &activity, query, id, name, parentID); err != nil {
		return nil, translateWriteError(err)
	}

	if err := r.resolveParentChain(ctx, tx, &activity); err != nil {
		return nil, err
	}

	if activity.ExceedsDepthLimit() {
		return nil, errors.ErrDepthLimit
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit activity update", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &activity, nil
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Каскад по parent_id удаляет поддерево; RESTRICT на связи с
	// организациями обрывает весь каскад
	result, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrActivityNotFound
	}
	return nil
}

func (r *activityRepository) FindIDsByName(ctx context.Context, substring string) ([]uuid.UUID, error) {
	query := `SELECT id FROM activities WHERE name ILIKE '%' || $1 || '%'`

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, substring); err != nil {
		r.logger.Error("Failed to search activities by name", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return ids, nil
}

func (r *activityRepository) ExpandDescendants(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	// Три яруса фиксированной глубины: сами узлы, дети, внуки
	query := `
		WITH tier0 AS (
			SELECT id FROM activities WHERE id = ANY($1::uuid[])
		), tier1 AS (
			SELECT a.id FROM activities a JOIN tier0 t ON a.parent_id = t.id
		), tier2 AS (
			SELECT a.id FROM activities a JOIN tier1 t ON a.parent_id = t.id
		)
		SELECT id FROM tier0
		UNION SELECT id FROM tier1
		UNION SELECT id FROM tier2
	`

	var expanded []uuid.UUID
	if err := r.db.SelectContext(ctx, &expanded, query, pq.Array(uuidStrings(ids))); err != nil {
		r.logger.Error("Failed to expand descendants", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return expanded, nil
}

// parentChainRow - активность с родителем и прародителем одним запросом
type parentChainRow struct {
	ID            uuid.UUID  `db:"id"`
	Name          string     `db:"name"`
	ParentID      *uuid.UUID `db:"parent_id"`
	GrandID       *uuid.UUID `db:"grand_id"`
	GrandName     *string    `db:"grand_name"`
	GrandParentID *uuid.UUID `db:"grand_parent_id"`
}

// resolveParentChain загружает цепочку предков ровно на два уровня вверх
func (r *activityRepository) resolveParentChain(ctx context.Context, q sqlx.QueryerContext, activity *domain.Activity) error {
	if activity.ParentID == nil {
		return nil
	}

	query := `
		SELECT p.id, p.name, p.parent_id,
		       g.id AS grand_id, g.name AS grand_name, g.parent_id AS grand_parent_id
		FROM activities p
		LEFT JOIN activities g ON g.id = p.parent_id
		WHERE p.id = $1
	`

	var row parentChainRow
	err := sqlx.GetContext(ctx, q, &row, query, *activity.ParentID)
	if err == sql.ErrNoRows {
		// Родитель исчез между запросами - считаем ссылку битой
		return errors.ErrActivityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to resolve parent chain", zap.Error(err))
		return errors.ErrDatabaseError
	}

	activity.Parent = &domain.Activity{
		ID:       row.ID,
		Name:     row.Name,
		ParentID: row.ParentID,
	}
	if row.GrandID != nil {
		activity.Parent.Parent = &domain.Activity{
			ID:       *row.GrandID,
			Name:     *row.GrandName,
			ParentID: row.GrandParentID,
		}
	}
	return nil
}

// attachChildren дозагружает детей и внуков для набора активностей
func (r *activityRepository) attachChildren(ctx context.Context, parents []*domain.Activity) error {
	children, err := r.selectByParents(ctx, activityIDs(parents))
	if err != nil {
		return err
	}
	linkChildren(parents, children)

	grandchildren, err := r.selectByParents(ctx, activityIDs(children))
	if err != nil {
		return err
	}
	linkChildren(children, grandchildren)

	return nil
}

func (r *activityRepository) selectByParents(ctx context.Context, parentIDs []uuid.UUID) ([]*domain.Activity, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + activityColumns + ` FROM activities WHERE parent_id = ANY($1::uuid[]) ORDER BY name`

	var activities []*domain.Activity
	if err := r.db.SelectContext(ctx, &activities, query, pq.Array(uuidStrings(parentIDs))); err != nil {
		r.logger.Error("Failed to select child activities", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return activities, nil
}

func linkChildren(parents, children []*domain.Activity) {
	byID := make(map[uuid.UUID]*domain.Activity, len(parents))
	for _, p := range parents {
		byID[p.ID] = p
	}
	for _, c := range children {
		if c.ParentID == nil {
			continue
		}
		if p, ok := byID[*c.ParentID]; ok {
			p.Children = append(p.Children, c)
		}
	}
}

func activityIDs(activities []*domain.Activity) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return ids
}

func uuidStrings(ids []uuid.UUID) []string {
	strs := make([]string, 0, len(ids))
	for _, id := range ids {
		strs = append(strs, id.String())
	}
	return strs
}
