package shared

// DomainError is a business rule violation. The Code is stable and machine
// readable; the HTTP layer maps codes to status codes.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string { return e.Message }

// NewDomainError builds a DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Sentinel errors shared across bounded contexts.
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrPeriodOverlap       = NewDomainError("PERIOD_OVERLAP", "Period overlaps with existing active/terminating lease")
	ErrPremiseNotFree      = NewDomainError("PREMISE_NOT_FREE", "Premise is not free")
)
