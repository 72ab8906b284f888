package postgres

import (
	stderrors "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/org-directory/internal/pkg/errors"
)

// SQLSTATE codes used for structured constraint translation
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

var constraintCleaner = strings.NewReplacer("(", "", ")", "", `"`, "")

// translateWriteError переводит ошибку вставки/обновления: нарушение FK
// означает отсутствие сущности, на которую ссылаются (NotFound), нарушение
// уникальности - Conflict.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !stderrors.As(err, &pgErr) {
		return errors.ErrDatabaseError
	}

	switch pgErr.Code {
	case codeForeignKeyViolation:
		return notFoundByConstraint(pgErr.ConstraintName)
	case codeUniqueViolation:
		return errors.Conflict(conflictMessage(pgErr))
	default:
		return errors.ErrDatabaseError
	}
}

// translateDeleteError переводит ошибку удаления: нарушение FK здесь - это
// RESTRICT со стороны зависимой записи, то есть Conflict.
func translateDeleteError(err error) error {
	var pgErr *pgconn.PgError
	if !stderrors.As(err, &pgErr) {
		return errors.ErrDatabaseError
	}

	if pgErr.Code == codeForeignKeyViolation {
		return errors.Conflict(conflictMessage(pgErr))
	}
	return errors.ErrDatabaseError
}

func notFoundByConstraint(constraint string) error {
	switch {
	case strings.Contains(constraint, "building_id"):
		return errors.ErrBuildingNotFound
	case strings.Contains(constraint, "activity_id"), strings.Contains(constraint, "parent_id"):
		return errors.ErrActivityNotFound
	case strings.Contains(constraint, "organization_id"):
		return errors.ErrOrganizationNotFound
	default:
		return errors.ErrDatabaseError
	}
}

func conflictMessage(pgErr *pgconn.PgError) string {
	if pgErr.Detail != "" {
		return constraintCleaner.Replace(pgErr.Detail)
	}
	return pgErr.ConstraintName + " violated"
}
