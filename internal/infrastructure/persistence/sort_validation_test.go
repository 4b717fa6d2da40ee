package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns ASC", "", "ASC"},
		{"asc lowercase returns ASC", "asc", "ASC"},
		{"DESC uppercase returns DESC", "DESC", "DESC"},
		{"desc lowercase returns DESC", "desc", "DESC"},
		{"whitespace around desc returns DESC", "  desc  ", "DESC"},
		{"invalid value returns ASC", "sideways", "ASC"},
		{"sql injection attempt returns ASC", "ASC; DROP TABLE premises;--", "ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultField string
		expected     string
	}{
		{"empty string returns default", "", "code", "code"},
		{"whitelisted field passes through", "area", "code", "area"},
		{"whitespace around valid field passes", "  area  ", "code", "area"},
		{"unknown column returns default", "secret_column", "code", "code"},
		{"case sensitive, uppercase rejected", "AREA", "code", "code"},
		{"sql injection attempt returns default", "code; DROP TABLE premises;--", "code", "code"},
		{"subquery injection returns default", "(SELECT CASE WHEN (SELECT count(*) FROM tenants) >= 0 THEN id ELSE code END)", "code", "code"},
		{"quoted injection returns default", "code'--", "code", "code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortField(tt.input, PremiseSortFields, tt.defaultField))
		})
	}
}

func TestSortFieldWhitelists(t *testing.T) {
	whitelists := map[string]map[string]bool{
		"PremiseSortFields":     PremiseSortFields,
		"ReservationSortFields": ReservationSortFields,
		"TenantSortFields":      TenantSortFields,
		"LeaseSortFields":       LeaseSortFields,
		"InvoiceSortFields":     InvoiceSortFields,
	}

	for name, fields := range whitelists {
		t.Run(name+" carries the base columns", func(t *testing.T) {
			assert.True(t, fields["id"])
			assert.True(t, fields["created_at"])
			assert.True(t, fields["updated_at"])
		})
	}
}
