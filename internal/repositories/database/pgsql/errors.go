package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sake/strichliste/internal/apperrors"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgQueryCanceled        = "57014"
	pgConnectionException  = "08"
)

// conflictReasons maps unique constraints to the message callers see.
var conflictReasons = map[string]string{
	"accounts_name_key":           "An account with this name already exists.",
	"articles_active_name_key":    "An active article with this name already exists.",
	"articles_active_barcode_key": "An active article with this barcode already exists.",
	"articles_precursor_id_key":   "Article has already been replaced.",
}

// classifyError turns a pgx error into the matching apperrors kind. Errors
// that already carry a kind pass through unchanged.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			reason, ok := conflictReasons[pgErr.ConstraintName]
			if !ok {
				reason = "Duplicate entry."
			}
			return apperrors.NewConflictError(reason, err)
		case pgErr.Code == pgLockNotAvailable,
			pgErr.Code == pgQueryCanceled,
			pgErr.Code == pgDeadlockDetected,
			pgErr.Code == pgSerializationFailure,
			strings.HasPrefix(pgErr.Code, pgConnectionException):
			return apperrors.NewStorageUnavailableError(op, err)
		}
		return apperrors.NewStorageUnknownError(op, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStorageUnavailableError(op, err)
	}
	return apperrors.NewStorageUnknownError(op, err)
}
