package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"shop_backend/internal/shared/apperr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNumericOverflow     = "22003"
)

// IsDuplicateKey reports a unique constraint violation.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgCode(err) == pgUniqueViolation
}

// IsForeignKeyViolation reports a restrict/no-action foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgCode(err) == pgForeignKeyViolation
}

// IsNumericOverflow reports a value outside a numeric column's precision.
func IsNumericOverflow(err error) bool {
	return pgCode(err) == pgNumericOverflow
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Translate maps storage errors onto application errors: a missing row
// becomes notFound, deadline and cancellation become a retryable
// Unavailable error, anything else is returned unchanged.
func Translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apperr.Unavailable("storage unavailable", err)
	default:
		return err
	}
}
