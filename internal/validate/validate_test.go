package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mbc-landing-api/internal/models"
)

func completePayload() models.ApplicationPayload {
	return models.ApplicationPayload{
		BusinessName:  "Acme LLC",
		ContactName:   "Jane Doe",
		Email:         "jane@acme.com",
		Phone:         "555-0100",
		BusinessType:  "retail",
		DesiredAmount: "50000-100000",
	}
}

func TestValidate_Complete(t *testing.T) {
	normalized, result := Validate(completePayload())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "Acme LLC", normalized.BusinessName)
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ApplicationPayload)
		missing []string
	}{
		{
			name:    "missing email",
			mutate:  func(p *models.ApplicationPayload) { p.Email = "" },
			missing: []string{"email"},
		},
		{
			name:    "whitespace-only phone treated as missing",
			mutate:  func(p *models.ApplicationPayload) { p.Phone = "   " },
			missing: []string{"phone"},
		},
		{
			name: "multiple missing fields reported in order",
			mutate: func(p *models.ApplicationPayload) {
				p.BusinessName = ""
				p.DesiredAmount = ""
			},
			missing: []string{"businessName", "desiredAmount"},
		},
		{
			name: "everything missing",
			mutate: func(p *models.ApplicationPayload) {
				*p = models.ApplicationPayload{}
			},
			missing: models.RequiredFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := completePayload()
			tt.mutate(&payload)

			_, result := Validate(payload)

			assert.False(t, result.Valid)
			assert.Equal(t, tt.missing, result.MissingFields())
			for _, e := range result.Errors {
				assert.Equal(t, "REQUIRED_FIELD_MISSING", e.Code)
				assert.Contains(t, e.Message, e.Field)
			}
		})
	}
}

func TestValidate_Normalization(t *testing.T) {
	payload := completePayload()
	payload.Email = "  Jane@Acme.COM "
	payload.BusinessName = " Acme LLC  "

	normalized, result := Validate(payload)

	assert.True(t, result.Valid)
	assert.Equal(t, "jane@acme.com", normalized.Email)
	assert.Equal(t, "Acme LLC", normalized.BusinessName)
}

func TestValidate_Pure(t *testing.T) {
	payload := completePayload()
	payload.ContactName = ""

	first, firstResult := Validate(payload)
	second, secondResult := Validate(payload)

	assert.Equal(t, first, second)
	assert.Equal(t, firstResult, secondResult)
}
