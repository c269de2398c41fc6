package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeReservedID is used when a client supplies an identifier
	// reserved for synced budget expenses
	ErrCodeReservedID = "ERR_RESERVED_ID"
	// ErrCodeNothingToSync is used when a record has no monetary amount
	ErrCodeNothingToSync = "ERR_NOTHING_TO_SYNC"
	// ErrCodeNoRowsImported is used when an import file yields no valid rows
	ErrCodeNoRowsImported = "ERR_NO_ROWS_IMPORTED"
)

// Upload error codes
const (
	// ErrCodeFileTooLarge is used when an uploaded file exceeds the size cap
	ErrCodeFileTooLarge = "ERR_FILE_TOO_LARGE"
	// ErrCodeFileType is used when a file extension is not allowed
	ErrCodeFileType = "ERR_FILE_TYPE_NOT_ALLOWED"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState:   http.StatusUnprocessableEntity,
	ErrCodeReservedID:     http.StatusUnprocessableEntity,
	ErrCodeNothingToSync:  http.StatusUnprocessableEntity,
	ErrCodeNoRowsImported: http.StatusUnprocessableEntity,

	// Upload errors
	ErrCodeFileTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeFileType:     http.StatusUnsupportedMediaType,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the standardized
// wire format
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":             ErrCodeNotFound,
	"ALREADY_EXISTS":        ErrCodeAlreadyExists,
	"INVALID_INPUT":         ErrCodeInvalidInput,
	"INVALID_STATE":         ErrCodeInvalidState,
	"RESERVED_ID":           ErrCodeReservedID,
	"NOTHING_TO_SYNC":       ErrCodeNothingToSync,
	"NO_ROWS_IMPORTED":      ErrCodeNoRowsImported,
	"FILE_TOO_LARGE":        ErrCodeFileTooLarge,
	"FILE_TYPE_NOT_ALLOWED": ErrCodeFileType,
	"BAD_REQUEST":           ErrCodeBadRequest,
	"INTERNAL_ERROR":        ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
