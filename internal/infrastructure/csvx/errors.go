package csvx

import "fmt"

// RowError describes a single row that could not be parsed or imported
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column %s: %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// NewRowError creates a RowError for a specific column
func NewRowError(row int, column, message string) RowError {
	return RowError{Row: row, Column: column, Message: message}
}
