package apperrors

// ErrorCode classifies a failure.
type ErrorCode string

const (
	// System and transport
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeNetworkError         ErrorCode = "NETWORK_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeStorageError         ErrorCode = "STORAGE_ERROR"
	CodeUnknownError         ErrorCode = "UNKNOWN_ERROR"

	// Backend-reported
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
)
