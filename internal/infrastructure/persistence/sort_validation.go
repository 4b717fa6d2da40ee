package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort direction. Anything that is not
// DESC sorts ascending.
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "desc") {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField validates the requested sort column against the
// entity's whitelist. Unknown or empty fields fall back to defaultField so
// user input never reaches the ORDER BY clause raw.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// PremiseSortFields contains allowed sort fields for premises
var PremiseSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"code":           true,
	"type":           true,
	"address":        true,
	"floor":          true,
	"area":           true,
	"rate_type":      true,
	"base_rate":      true,
	"status":         true,
	"available_from": true,
}

// ReservationSortFields contains allowed sort fields for reservations
var ReservationSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"premise_id": true,
	"until":      true,
	"status":     true,
}

// TenantSortFields contains allowed sort fields for tenants
var TenantSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"type":       true,
	"name":       true,
	"unp":        true,
	"email":      true,
	"phone":      true,
	"address":    true,
}

// LeaseSortFields contains allowed sort fields for leases
var LeaseSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"number":      true,
	"date":        true,
	"premise_id":  true,
	"tenant_id":   true,
	"period_from": true,
	"period_to":   true,
	"currency":    true,
	"due_day":     true,
	"status":      true,
}

// InvoiceSortFields contains allowed sort fields for invoices
var InvoiceSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"accrual_id": true,
	"number":     true,
	"date":       true,
	"status":     true,
}
