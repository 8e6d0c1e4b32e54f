package shared

// DomainError is an error with a stable machine-readable code. The HTTP
// layer maps codes onto status values; the message is safe to return to
// clients.
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

// ErrNotFound is the sentinel every repository returns for a missing row.
var ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")
