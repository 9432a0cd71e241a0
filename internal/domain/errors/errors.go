package errors

import (
	"net/http"

	"homiio/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Retryable() bool   // Whether the caller may retry the operation as-is
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	retryable bool
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewRetryableError creates a base error that is flagged as retryable
func NewRetryableError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
		retryable: true,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Retryable reports whether the caller may retry the operation unchanged
func (e *BaseError) Retryable() bool {
	return e.retryable
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		retryable: e.retryable,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	ErrCoordinatesRequired = NewBaseError(
		http.StatusBadRequest,
		"COORDINATES_REQUIRED",
		"地址座標為必填欄位",
		"longitude and latitude are required",
	)

	ErrFolderNameRequired = NewBaseError(
		http.StatusBadRequest,
		"FOLDER_NAME_REQUIRED",
		"資料夾名稱為必填欄位",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"找不到該地址",
		"",
	)

	ErrAddressConflict = NewBaseError(
		http.StatusConflict,
		"ADDRESS_CONFLICT",
		"該地址已存在",
		"",
	)

	// Property-related errors
	ErrPropertyNotFound = NewBaseError(
		http.StatusNotFound,
		"PROPERTY_NOT_FOUND",
		"找不到該物件",
		"",
	)

	// Saved-property-related errors
	ErrSavedPropertyNotFound = NewBaseError(
		http.StatusNotFound,
		"SAVED_PROPERTY_NOT_FOUND",
		"找不到該收藏",
		"",
	)

	ErrFolderNotFound = NewBaseError(
		http.StatusNotFound,
		"FOLDER_NOT_FOUND",
		"找不到該資料夾",
		"",
	)

	ErrDefaultFolderImmutable = NewBaseError(
		http.StatusBadRequest,
		"DEFAULT_FOLDER_IMMUTABLE",
		"預設資料夾無法重新命名或刪除",
		"",
	)

	ErrMutationInFlight = NewBaseError(
		http.StatusConflict,
		"MUTATION_IN_FLIGHT",
		"該物件已有進行中的操作",
		"",
	)

	// Remote-call errors. Network and server failures are retryable;
	// authentication failures require a re-login, not a naive retry.
	ErrNetworkUnavailable = NewRetryableError(
		http.StatusServiceUnavailable,
		"NETWORK_UNAVAILABLE",
		"網路連線失敗,請稍後再試",
		"",
	)

	ErrRemoteServer = NewRetryableError(
		http.StatusBadGateway,
		"REMOTE_SERVER_ERROR",
		"伺服器發生錯誤,請稍後再試",
		"",
	)

	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"登入已過期,請重新登入",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Retryable reports whether the caller may retry the operation unchanged
func (e *DatabaseExecuteError) Retryable() bool {
	return false
}
