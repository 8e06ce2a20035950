package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		kind       apperrors.ConstraintKind
		constraint string
	}{
		{"postgres unique", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_users_email"}, apperrors.ConstraintUnique, "idx_users_email"},
		{"postgres wrapped fk", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_tickets_user"}), apperrors.ConstraintForeignKey, "fk_tickets_user"},
		{"gorm unique", gorm.ErrDuplicatedKey, apperrors.ConstraintUnique, ""},
		{"gorm fk", gorm.ErrForeignKeyViolated, apperrors.ConstraintForeignKey, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cerr *apperrors.ConstraintError
			require.True(t, errors.As(translate("op", tt.err), &cerr))
			assert.Equal(t, tt.kind, cerr.Kind)
			assert.Equal(t, tt.constraint, cerr.Constraint)
		})
	}
}

func TestTranslate_OtherErrors(t *testing.T) {
	assert.NoError(t, translate("op", nil))

	var serr *apperrors.StorageError
	err := translate("get user", &pgconn.PgError{Code: "08006"})
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "get user", serr.Op)
}
