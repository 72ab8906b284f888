package postgres

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/org-directory/internal/pkg/errors"
)

func TestTranslateWriteError(t *testing.T) {
	t.Run("foreign key violation maps to referenced entity", func(t *testing.T) {
		tests := []struct {
			constraint string
			expected   error
		}{
			{"organizations_building_id_fkey", errors.ErrBuildingNotFound},
			{"organizations_activities_activity_id_fkey", errors.ErrActivityNotFound},
			{"activities_parent_id_fkey", errors.ErrActivityNotFound},
			{"phones_organization_id_fkey", errors.ErrOrganizationNotFound},
			{"something_else_fkey", errors.ErrDatabaseError},
		}

		for _, tt := range tests {
			err := translateWriteError(&pgconn.PgError{
				Code:           "23503",
				ConstraintName: tt.constraint,
			})
			if err != tt.expected {
				t.Fatalf("constraint %s expected %v, got %v", tt.constraint, tt.expected, err)
			}
		}
	})

	t.Run("unique violation becomes conflict with cleaned detail", func(t *testing.T) {
		err := translateWriteError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "buildings_address_key",
			Detail:         `Key (address)=(ул. Ленина, 1) already exists.`,
		})

		appErr, ok := err.(*errors.AppError)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.StatusCode != 409 {
			t.Fatalf("expected 409, got %d", appErr.StatusCode)
		}
		if appErr.Message != "Key address=ул. Ленина, 1 already exists." {
			t.Fatalf("unexpected message: %s", appErr.Message)
		}
	})

	t.Run("unique violation without detail falls back to constraint name", func(t *testing.T) {
		err := translateWriteError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "phones_phone_key",
		})

		appErr, ok := err.(*errors.AppError)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.Message != "phones_phone_key violated" {
			t.Fatalf("unexpected message: %s", appErr.Message)
		}
	})

	t.Run("wrapped pg errors are still recognized", func(t *testing.T) {
		wrapped := fmt.Errorf("insert organization: %w", &pgconn.PgError{
			Code:           "23503",
			ConstraintName: "organizations_building_id_fkey",
		})

		if err := translateWriteError(wrapped); err != errors.ErrBuildingNotFound {
			t.Fatalf("expected ErrBuildingNotFound, got %v", err)
		}
	})

	t.Run("non-pg errors collapse to database error", func(t *testing.T) {
		if err := translateWriteError(stderrors.New("connection reset")); err != errors.ErrDatabaseError {
			t.Fatalf("expected ErrDatabaseError, got %v", err)
		}
	})
}

func TestTranslateDeleteError(t *testing.T) {
	t.Run("restricting reference becomes conflict", func(t *testing.T) {
		err := translateDeleteError(&pgconn.PgError{
			Code:           "23503",
			ConstraintName: "organizations_building_id_fkey",
			Detail:         `Key (id)=(42) is still referenced from table "organizations".`,
		})

		appErr, ok := err.(*errors.AppError)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.StatusCode != 409 {
			t.Fatalf("expected 409, got %d", appErr.StatusCode)
		}
	})

	t.Run("other failures collapse to database error", func(t *testing.T) {
		err := translateDeleteError(&pgconn.PgError{Code: "57014"})
		if err != errors.ErrDatabaseError {
			t.Fatalf("expected ErrDatabaseError, got %v", err)
		}
	})
}
