package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the base yaml config, merges the environment-specific overlay
// and applies environment variable overrides (e.g. EMAIL_RESEND_API_KEY).
func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig() // overlay is optional

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg, env)
	overrideFromEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func applyDefaults(cfg *Config, env string) {
	if cfg.App.Name == "" {
		cfg.App.Name = "mbc-landing-api"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = env
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30000
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 25000
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "resend"
	}
	if cfg.Email.SendTimeout == 0 {
		cfg.Email.SendTimeout = 10000
	}
	if cfg.Email.Resend.BaseURL == "" {
		cfg.Email.Resend.BaseURL = "https://api.resend.com"
	}
	if cfg.Email.SendGrid.BaseURL == "" {
		cfg.Email.SendGrid.BaseURL = "https://api.sendgrid.com"
	}
	if cfg.Email.SES.Region == "" {
		cfg.Email.SES.Region = "us-east-1"
	}
	if cfg.DocuSeal.BaseURL == "" {
		cfg.DocuSeal.BaseURL = "https://api.docuseal.com"
	}
	if cfg.DocuSeal.Timeout == 0 {
		cfg.DocuSeal.Timeout = 10000
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// overrideFromEnv backfills secrets and recipient overrides from the process
// environment when the yaml left them empty. Secrets are expected to arrive
// this way in every deployed environment.
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		cfg.Email.Resend.APIKey = v
	}
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		cfg.Email.SendGrid.APIKey = v
	}
	if v := os.Getenv("DOCUSEAL_API_KEY"); v != "" {
		cfg.DocuSeal.APIKey = v
	}
	if v := os.Getenv("NOTIFICATION_EMAIL"); v != "" {
		cfg.Email.Recipients = splitRecipients(v)
	}
	if v := os.Getenv("NOTIFICATION_EMAIL_2"); v != "" {
		cfg.Email.Recipients = append(cfg.Email.Recipients, v)
	}
	if v := os.Getenv("FROM_EMAIL"); v != "" {
		cfg.Email.FromEmail = v
	}
}

func splitRecipients(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validateConfig(cfg *Config) error {
	if cfg.Email.FromEmail == "" {
		return fmt.Errorf("email.from_email is required")
	}
	if len(cfg.Email.Recipients) == 0 && len(cfg.Email.DevRecipients) == 0 {
		return fmt.Errorf("at least one notification recipient is required")
	}
	switch cfg.Email.Provider {
	case "resend", "sendgrid", "ses":
	default:
		return fmt.Errorf("unknown email provider %q", cfg.Email.Provider)
	}
	return nil
}
