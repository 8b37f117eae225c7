package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err comes from a unique constraint.
// TranslateError covers the configured dialects; raw pgconn errors surface
// when a connection is opened without it.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// translateNotFound maps gorm's missing-row error to the domain error
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}
