package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors into domain errors.

// ErrNotFound converts a missing-record error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict builds a general 409 for a named domain.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus rejects a value outside an enumerated set.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// Predefined errors for the frequent static cases.

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUsernameAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Username already in use",
	http.StatusConflict,
)

// Answers 400, not 409; existing clients depend on it.
var ErrUserAlreadyHasAddress = New(
	CodeConflict,
	"address",
	"User already has an address",
	http.StatusBadRequest,
)

var ErrMediaAlreadyTracked = New(
	CodeConflict,
	"usermedia",
	"Media is already in the user's list",
	http.StatusConflict,
)

var ErrInvalidUserRating = New(
	CodeValidationFailed,
	"review",
	"Invalid user rating value",
	http.StatusBadRequest,
)

var ErrInvalidMediaStatus = New(
	CodeInvalidStatus,
	"usermedia",
	"Invalid media status value",
	http.StatusBadRequest,
)
