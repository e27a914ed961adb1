// Package validate enforces the server-side input contract for application
// payloads: every business field present and non-empty. Deeper semantic
// checks (phone format, amount ranges) belong to the form layer.
package validate

import (
	"strings"

	"mbc-landing-api/internal/models"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// MissingFields returns the names of the fields that failed presence checks.
func (r *Result) MissingFields() []string {
	fields := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

// Validate checks field presence and returns a normalized copy of the
// payload (trimmed fields, lowercased email). Missing and empty-string
// fields are the same failure. Pure: no I/O, deterministic for equal input.
func Validate(p models.ApplicationPayload) (models.ApplicationPayload, *Result) {
	normalized := models.ApplicationPayload{
		BusinessName:  strings.TrimSpace(p.BusinessName),
		ContactName:   strings.TrimSpace(p.ContactName),
		Email:         strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:         strings.TrimSpace(p.Phone),
		BusinessType:  strings.TrimSpace(p.BusinessType),
		DesiredAmount: strings.TrimSpace(p.DesiredAmount),
		Timestamp:     strings.TrimSpace(p.Timestamp),
		Source:        strings.TrimSpace(p.Source),
	}

	values := map[string]string{
		"businessName":  normalized.BusinessName,
		"contactName":   normalized.ContactName,
		"email":         normalized.Email,
		"phone":         normalized.Phone,
		"businessType":  normalized.BusinessType,
		"desiredAmount": normalized.DesiredAmount,
	}

	var errs []FieldError
	for _, field := range models.RequiredFields {
		if values[field] == "" {
			errs = append(errs, FieldError{
				Field:   field,
				Message: "Missing required field: " + field,
				Code:    "REQUIRED_FIELD_MISSING",
			})
		}
	}

	return normalized, &Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
