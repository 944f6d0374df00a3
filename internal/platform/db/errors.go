package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error classes the API maps to client-visible codes.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
)

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsForeignKeyViolation reports a referential-integrity failure: either an
// insert/update naming a missing parent row, or a delete blocked by dependents.
func IsForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}

func IsUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}

func IsConstraintViolation(err error) bool {
	switch pgErrCode(err) {
	case codeForeignKeyViolation, codeUniqueViolation, codeNotNullViolation, codeCheckViolation:
		return true
	}
	return false
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
