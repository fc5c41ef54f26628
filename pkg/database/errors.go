package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories react to.
const (
	PgErrUniqueViolation      = "23505" // unique_violation
	PgErrForeignKeyViolation  = "23503" // foreign_key_violation
	PgErrCheckViolation       = "23514" // check_violation
	PgErrNumericOutOfRange    = "22003" // numeric_value_out_of_range
	PgErrSerializationFailure = "40001" // serialization_failure
	PgErrDeadlockDetected     = "40P01" // deadlock_detected
)

// PgCode returns the SQLSTATE of err if it wraps a *pgconn.PgError.
func PgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

// IsUniqueViolation reports whether err is a unique violation. When
// constraint is non-empty the violated constraint name must match too.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	code, ok := PgCode(err)
	return ok && code == PgErrForeignKeyViolation
}

// IsRetryable reports whether the whole transaction can be replayed:
// serialization failures and deadlocks.
func IsRetryable(err error) bool {
	code, ok := PgCode(err)
	return ok && (code == PgErrSerializationFailure || code == PgErrDeadlockDetected)
}

// IsInvalidValue reports whether err is a value the schema refused: a
// failed CHECK constraint or a number outside its column's range.
func IsInvalidValue(err error) bool {
	code, ok := PgCode(err)
	return ok && (code == PgErrCheckViolation || code == PgErrNumericOutOfRange)
}
