package submission

import (
	"context"
	"os"
	"strings"
	"time"

	"mbc-landing-api/internal/common/config"
	"mbc-landing-api/internal/common/logger"
	"mbc-landing-api/internal/dispatch"
	"mbc-landing-api/internal/email"
)

// Environment is the deployment context a request is served under.
type Environment string

const (
	EnvLocal      Environment = "local"
	EnvStaging    Environment = "staging"
	EnvProduction Environment = "production"
)

// ProviderConfig is the environment-resolved delivery configuration for one
// request. Immutable once resolved; the same coordinator logic runs
// unmodified across environments because of this indirection.
type ProviderConfig struct {
	Environment Environment
	Simulated   bool
	Sender      email.Sender
	Target      dispatch.Target
}

// Resolver selects the concrete transport and recipient set at request time,
// based on the serving hostname and on which credentials are present.
type Resolver struct {
	cfg    *config.Config
	logger logger.Logger
	live   email.Sender
	sim    email.Sender
}

func NewResolver(ctx context.Context, cfg *config.Config, log logger.Logger) (*Resolver, error) {
	r := &Resolver{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "resolver"}),
		sim:    email.NewSimulatedSender(log),
	}

	sendTimeout := time.Duration(cfg.Email.SendTimeout) * time.Millisecond

	// Credential presence, not environment name, gates live delivery.
	switch cfg.Email.Provider {
	case "resend":
		if cfg.Email.Resend.APIKey != "" {
			r.live = email.NewResendSender(cfg.Email.Resend.APIKey, cfg.Email.Resend.BaseURL, sendTimeout)
		}
	case "sendgrid":
		if cfg.Email.SendGrid.APIKey != "" {
			r.live = email.NewSendGridSender(cfg.Email.SendGrid.APIKey, cfg.Email.SendGrid.BaseURL, sendTimeout)
		}
	case "ses":
		if os.Getenv("AWS_ACCESS_KEY_ID") != "" {
			sender, err := email.NewSESSender(ctx, cfg.Email.SES.Region)
			if err != nil {
				return nil, err
			}
			r.live = sender
		}
	}

	if r.live == nil {
		r.logger.Warn("no transport credentials present, email delivery will be simulated", map[string]interface{}{
			"provider": cfg.Email.Provider,
		})
	}

	return r, nil
}

// Resolve picks the delivery configuration for a request served on host.
func (r *Resolver) Resolve(host string) ProviderConfig {
	env := r.classify(host)

	sender := r.live
	simulated := false
	if env == EnvLocal || sender == nil {
		sender = r.sim
		simulated = true
	}

	recipients := r.cfg.Email.Recipients
	if env != EnvProduction && len(r.cfg.Email.DevRecipients) > 0 {
		recipients = r.cfg.Email.DevRecipients
	}
	if len(recipients) == 0 {
		recipients = r.cfg.Email.DevRecipients
	}

	return ProviderConfig{
		Environment: env,
		Simulated:   simulated,
		Sender:      sender,
		Target: dispatch.Target{
			Recipients: recipients,
			FromEmail:  r.cfg.Email.FromEmail,
			FromName:   r.cfg.Email.FromName,
		},
	}
}

func (r *Resolver) classify(host string) Environment {
	if i := strings.LastIndex(host, ":"); i != -1 {
		host = host[:i]
	}

	switch {
	case host == "localhost" || host == "127.0.0.1" || host == "::1":
		return EnvLocal
	case strings.Contains(host, ".pages.dev"):
		return EnvStaging
	}

	switch r.cfg.App.Environment {
	case "production":
		return EnvProduction
	case "staging":
		return EnvStaging
	case "development", "":
		return EnvLocal
	default:
		return EnvProduction
	}
}
