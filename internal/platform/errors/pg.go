package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

type sqlState struct {
	code  ErrorCode
	retry bool
}

// SQLSTATEs the evaluation and role stores can hit; anything else is ErrorCodeDB
var sqlStates = map[string]sqlState{
	"23502": {code: ErrorCodeValidation},      // not_null_violation
	"23514": {code: ErrorCodeValidation},      // check_violation
	"22P02": {code: ErrorCodeInvalidArgument}, // invalid_text_representation
	"42P01": {code: ErrorCodeUnavailable},     // undefined_table, migrations not applied
	"57P01": {code: ErrorCodeUnavailable, retry: true},
	"57P03": {code: ErrorCodeUnavailable, retry: true},
	"40001": {code: ErrorCodeDB, retry: true},
	"40P01": {code: ErrorCodeDB, retry: true},
}

// retryText matches drivers that flatten the server error into a string
var retryText = []string{
	"commit unexpectedly resulted in rollback",
	"deadlock detected",
	"could not serialize access",
	"terminating connection due to administrator command",
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := stderrs.As(err, &pgErr)
	return pgErr, ok
}

// DBErrorCode classifies a Postgres error; ok is false when err did not come from the server
func DBErrorCode(err error) (code ErrorCode, ok bool) {
	pgErr, ok := pgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if s, known := sqlStates[pgErr.Code]; known {
		return s.code, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its mapped code; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// Retryable is true for contention and connection resets. Context errors never retry
func Retryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := pgError(err); ok {
		return sqlStates[pgErr.Code].retry
	}
	msg := strings.ToLower(Root(err).Error())
	for _, s := range retryText {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
