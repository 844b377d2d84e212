package apperrors

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// System errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStoreFailed   ErrorCode = "STORE_OPERATION_FAILED"

	// Request / business errors
	CodeMissingParameter   ErrorCode = "MISSING_PARAMETER"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	CodePreconditionFailed ErrorCode = "PRECONDITION_FAILED"
	CodeAlreadyExists      ErrorCode = "ALREADY_EXISTS"

	// Authentication
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeAccountPending     ErrorCode = "ACCOUNT_PENDING"
	CodeAccountFrozen      ErrorCode = "ACCOUNT_FROZEN"
)
