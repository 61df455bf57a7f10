package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func pgCode(err error) (string, string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}
	return pgErr.Code, pgErr.ConstraintName, true
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint. An empty constraintName matches any unique violation.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	code, constraint, ok := pgCode(err)
	if !ok || code != codeUniqueViolation {
		return false
	}
	return constraintName == "" || constraint == constraintName
}

// IsForeignKeyError reports a foreign key violation (a dangling reference at write time).
func IsForeignKeyError(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == codeForeignKeyViolation
}

// IsCheckConstraintError reports a CHECK constraint violation.
func IsCheckConstraintError(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == codeCheckViolation
}
