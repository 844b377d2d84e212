package apperrors

import (
	"fmt"
	"net/http"
)

// Factories for the domain error taxonomy: MissingParameter, NotFound,
// StoreOperationFailed and PreconditionFailed. Repositories and services
// raise these; handlers only translate them to the wire envelope.

// ErrMissingParameter reports an absent required parameter by name.
func ErrMissingParameter(name string) *AppError {
	return New(CodeMissingParameter, "request", "Missing parameter: "+name, http.StatusBadRequest)
}

// ErrNotFound converts a store miss into a 404.
func ErrNotFound(err error, resource string) *AppError {
	return Wrap(err, CodeNotFound, "resource", resource+" not found", http.StatusNotFound)
}

// ErrStoreFailed wraps a persistence failure reported by the database layer.
func ErrStoreFailed(err error, operation string) *AppError {
	return Wrap(err, CodeStoreFailed, "store", fmt.Sprintf("Store operation failed: %s", operation), http.StatusInternalServerError)
}

// ErrPreconditionFailed reports a dispatch (or similar) called on a record
// that is missing a prerequisite field.
func ErrPreconditionFailed(domain, message string) *AppError {
	return New(CodePreconditionFailed, domain, message, http.StatusUnprocessableEntity)
}

// --- Static auth errors (original login failure modes) ---

var ErrEmailNotFound = New(CodeInvalidCredentials, "auth", "Email not found", http.StatusUnauthorized)

var ErrPasswordIncorrect = New(CodeInvalidCredentials, "auth", "Password incorrect", http.StatusUnauthorized)

var ErrAccountPending = New(CodeAccountPending, "auth", "Account is pending email confirmation", http.StatusForbidden)

var ErrAccountFrozen = New(CodeAccountFrozen, "auth", "Account is frozen", http.StatusForbidden)
