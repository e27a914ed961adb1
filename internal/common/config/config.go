package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Email    EmailConfig    `mapstructure:"email"`
	DocuSeal DocuSealConfig `mapstructure:"docuseal"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ReadTimeout    int    `mapstructure:"read_timeout"`    // milliseconds
	WriteTimeout   int    `mapstructure:"write_timeout"`   // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// EmailConfig holds settings for the notification dispatch channel.
type EmailConfig struct {
	// Provider selects the outbound transport: "resend", "sendgrid" or "ses".
	// When the selected provider's credentials are absent the dispatcher
	// degrades to the simulated local-development transport.
	Provider string `mapstructure:"provider"`

	Recipients    []string `mapstructure:"recipients"`
	DevRecipients []string `mapstructure:"dev_recipients"`
	FromEmail     string   `mapstructure:"from_email"`
	FromName      string   `mapstructure:"from_name"`

	FollowUpMessage string `mapstructure:"follow_up_message"`
	SendTimeout     int    `mapstructure:"send_timeout"` // milliseconds

	Resend struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"resend"`

	SendGrid struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"sendgrid"`

	SES struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"ses"`
}

// DocuSealConfig holds settings for the e-signature document channel.
// The integration is optional: absent api_key or template_id disables it.
type DocuSealConfig struct {
	APIKey      string `mapstructure:"api_key"`
	TemplateID  int    `mapstructure:"template_id"`
	BaseURL     string `mapstructure:"base_url"`
	ReplyTo     string `mapstructure:"reply_to"`
	RedirectURL string `mapstructure:"redirect_url"`
	Timeout     int    `mapstructure:"timeout"` // milliseconds
}

// Enabled reports whether the document channel should attempt live calls.
func (d DocuSealConfig) Enabled() bool {
	return d.APIKey != "" && d.TemplateID != 0
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
