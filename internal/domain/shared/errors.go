package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound       = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists  = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput   = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState   = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrReservedID     = NewDomainError("RESERVED_ID", "Identifier pattern is reserved for synced records")
	ErrNothingToSync  = NewDomainError("NOTHING_TO_SYNC", "Record has no monetary amount to sync")
	ErrFileTooLarge   = NewDomainError("FILE_TOO_LARGE", "File exceeds the maximum allowed size")
	ErrFileType       = NewDomainError("FILE_TYPE_NOT_ALLOWED", "File extension is not in the allow list")
	ErrNoRowsImported = NewDomainError("NO_ROWS_IMPORTED", "No rows could be parsed from the import file")
)
