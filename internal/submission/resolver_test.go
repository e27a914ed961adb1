package submission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbc-landing-api/internal/common/config"
	"mbc-landing-api/internal/common/logger"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Environment = "production"
	cfg.Email.Provider = "resend"
	cfg.Email.Recipients = []string{"leads@example.com"}
	cfg.Email.DevRecipients = []string{"dev-leads@example.com"}
	cfg.Email.FromEmail = "noreply@example.com"
	cfg.Email.FromName = "MBC Landing Page"
	cfg.Email.SendTimeout = 5000
	cfg.Email.Resend.BaseURL = "https://api.resend.com"
	return cfg
}

func TestResolver_CredentialsGateLiveDelivery(t *testing.T) {
	tests := []struct {
		name      string
		apiKey    string
		host      string
		simulated bool
	}{
		{
			name:      "no credentials forces simulation even in production",
			apiKey:    "",
			host:      "momentumbusiness.capital",
			simulated: true,
		},
		{
			name:      "credentials present in production goes live",
			apiKey:    "re_key",
			host:      "momentumbusiness.capital",
			simulated: false,
		},
		{
			name:      "localhost always simulates, credentials or not",
			apiKey:    "re_key",
			host:      "localhost:8080",
			simulated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Email.Resend.APIKey = tt.apiKey

			r, err := NewResolver(context.Background(), cfg, logger.NewNoOpLogger())
			require.NoError(t, err)

			provider := r.Resolve(tt.host)
			assert.Equal(t, tt.simulated, provider.Simulated)
			if tt.simulated {
				assert.Equal(t, "simulated", provider.Sender.Name())
			} else {
				assert.Equal(t, "resend", provider.Sender.Name())
			}
		})
	}
}

func TestResolver_EnvironmentClassification(t *testing.T) {
	cfg := testConfig()
	cfg.Email.Resend.APIKey = "re_key"
	r, err := NewResolver(context.Background(), cfg, logger.NewNoOpLogger())
	require.NoError(t, err)

	tests := []struct {
		host string
		env  Environment
	}{
		{"localhost:8080", EnvLocal},
		{"127.0.0.1:3000", EnvLocal},
		{"preview.mbc-landing-page.pages.dev", EnvStaging},
		{"momentumbusiness.capital", EnvProduction},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.env, r.Resolve(tt.host).Environment)
		})
	}
}

func TestResolver_RecipientSelection(t *testing.T) {
	cfg := testConfig()
	cfg.Email.Resend.APIKey = "re_key"
	r, err := NewResolver(context.Background(), cfg, logger.NewNoOpLogger())
	require.NoError(t, err)

	prod := r.Resolve("momentumbusiness.capital")
	assert.Equal(t, []string{"leads@example.com"}, prod.Target.Recipients)

	staging := r.Resolve("preview.mbc-landing-page.pages.dev")
	assert.Equal(t, []string{"dev-leads@example.com"}, staging.Target.Recipients)

	assert.Equal(t, "noreply@example.com", prod.Target.FromEmail)
	assert.Equal(t, "MBC Landing Page", prod.Target.FromName)
}

func TestResolver_SendGridProvider(t *testing.T) {
	cfg := testConfig()
	cfg.Email.Provider = "sendgrid"
	cfg.Email.SendGrid.APIKey = "sg_key"
	cfg.Email.SendGrid.BaseURL = "https://api.sendgrid.com"

	r, err := NewResolver(context.Background(), cfg, logger.NewNoOpLogger())
	require.NoError(t, err)

	provider := r.Resolve("momentumbusiness.capital")
	assert.False(t, provider.Simulated)
	assert.Equal(t, "sendgrid", provider.Sender.Name())
}
