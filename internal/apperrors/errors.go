package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error. Callers switch on the kind, the
// reason is for humans and logs.
type Kind string

const (
	KindEntityNotFound     Kind = "ENTITY_NOT_FOUND"
	KindParameterInvalid   Kind = "PARAMETER_INVALID"
	KindConflict           Kind = "CONFLICT"
	KindStorageUnavailable Kind = "STORAGE_UNAVAILABLE"
	KindStorageUnknown     Kind = "STORAGE_UNKNOWN"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates a uniqueness or state conflict, e.g. an active
// article with the same name already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorageUnavailable indicates the database could not be reached or a
// lock could not be acquired in time.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrStorageUnknown indicates any other, non-recoverable backend failure.
var ErrStorageUnknown = errors.New("storage failure")

var sentinelByKind = map[Kind]error{
	KindEntityNotFound:     ErrNotFound,
	KindParameterInvalid:   ErrValidation,
	KindConflict:           ErrDuplicate,
	KindStorageUnavailable: ErrStorageUnavailable,
	KindStorageUnknown:     ErrStorageUnknown,
}

// AppError is the typed error returned by services and repositories.
type AppError struct {
	Kind Kind
	// Entity names the missing thing for KindEntityNotFound ("account", "article").
	Entity string
	Reason string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrNotFound) and friends match on kind.
func (e *AppError) Is(target error) bool {
	return sentinelByKind[e.Kind] == target
}

// NewAppError builds an AppError of the given kind.
func NewAppError(kind Kind, reason string, err error) *AppError {
	return &AppError{Kind: kind, Reason: reason, Err: err}
}

// NewEntityNotFoundError reports a missing account, article or counterpart.
func NewEntityNotFoundError(entity, reason string) *AppError {
	return &AppError{Kind: KindEntityNotFound, Entity: entity, Reason: reason}
}

// NewValidationFailedError reports a request that fails shape or boundary validation.
func NewValidationFailedError(reason string) *AppError {
	return &AppError{Kind: KindParameterInvalid, Reason: reason}
}

// NewConflictError reports a catalog uniqueness or replace-of-inactive violation.
func NewConflictError(reason string, err error) *AppError {
	return &AppError{Kind: KindConflict, Reason: reason, Err: err}
}

// NewStorageUnavailableError reports connection failures and lock-wait timeouts.
func NewStorageUnavailableError(op string, err error) *AppError {
	return &AppError{Kind: KindStorageUnavailable, Reason: op, Err: err}
}

// NewStorageUnknownError reports any other backend failure.
func NewStorageUnknownError(op string, err error) *AppError {
	return &AppError{Kind: KindStorageUnknown, Reason: op, Err: err}
}

// KindOf returns the kind carried by err. Plain sentinel errors map to their
// kind; anything unclassified is KindStorageUnknown.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	for kind, sentinel := range sentinelByKind {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindStorageUnknown
}

// Reason returns the human readable reason of err, suitable for a response body.
func Reason(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return err.Error()
}

// HTTPStatus maps an error to the status code handlers respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindEntityNotFound:
		return http.StatusNotFound
	case KindParameterInvalid:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
