package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall through to the prefix rules in GetHTTPStatus.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:        http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Uniqueness conflicts
	"CODE_TAKEN": http.StatusConflict,
	"UNP_TAKEN":  http.StatusConflict,

	// Occupancy conflicts
	"PERIOD_OVERLAP":   http.StatusConflict,
	"PREMISE_NOT_FREE": http.StatusConflict,
	"PREMISE_RESERVED": http.StatusConflict,
	"PREMISE_RENTED":   http.StatusConflict,

	// Referential conflicts
	"PREMISE_IN_USE": http.StatusConflict,
	"TENANT_IN_USE":  http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"RESERVATION_MISMATCH": http.StatusUnprocessableEntity,
	"RESERVATION_INACTIVE": http.StatusUnprocessableEntity,
	"MISSING_RATE":         http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code. INVALID_*
// codes not mapped explicitly are input errors and return 400; anything else
// unknown returns 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
