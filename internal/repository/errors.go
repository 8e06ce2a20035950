package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate wraps a driver error into the apperrors taxonomy. Postgres
// errors carry the violated constraint; the gorm sentinels come from
// dialects opened with TranslateError (sqlite in tests) and do not.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &apperrors.ConstraintError{Kind: apperrors.ConstraintUnique, Constraint: pgErr.ConstraintName, Err: err}
		case pgForeignKeyViolation:
			return &apperrors.ConstraintError{Kind: apperrors.ConstraintForeignKey, Constraint: pgErr.ConstraintName, Err: err}
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &apperrors.ConstraintError{Kind: apperrors.ConstraintUnique, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &apperrors.ConstraintError{Kind: apperrors.ConstraintForeignKey, Err: err}
	}

	return &apperrors.StorageError{Op: op, Err: err}
}

// first runs q and maps gorm.ErrRecordNotFound to a nil row.
func first[T any](op string, q *gorm.DB) (*T, error) {
	var row T
	err := q.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(op, err)
	}
	return &row, nil
}
