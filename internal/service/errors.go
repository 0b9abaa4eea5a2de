package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/serviplan/booking-api/internal/httperr"
)

// notFound turns the repository's absence marker into the domain-level
// not-found failure. Any other storage error passes through untouched.
func notFound(err error, code, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFoundErr(code, message)
	}
	return err
}

// isUniqueViolation reports whether an insert hit a unique constraint.
// The constraint is the authoritative duplicate guard; the pre-checks in
// the user service are only a fast path.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
