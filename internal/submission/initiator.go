package submission

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mbc-landing-api/internal/common/config"
	"mbc-landing-api/internal/common/logger"
	"mbc-landing-api/internal/common/metrics"
	"mbc-landing-api/internal/docuseal"
	"mbc-landing-api/internal/models"
)

const submitterRole = "Business Owner"

// DocumentClient is the slice of the docuseal client used by the initiator,
// extracted for mocking.
type DocumentClient interface {
	CreateSubmission(ctx context.Context, submission *docuseal.SubmissionRequest) (*docuseal.SubmissionResponse, error)
}

// Initiator optionally opens a signing session for the applicant. The
// integration is an enhancement: absent configuration is a no-op and a
// provider failure never fails the overall submission, since a human
// follow-up can always complete the signature step out of band.
type Initiator struct {
	client DocumentClient
	cfg    config.DocuSealConfig
	logger logger.Logger
}

func NewInitiator(cfg config.DocuSealConfig, log logger.Logger) *Initiator {
	i := &Initiator{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "initiator"}),
	}
	if cfg.Enabled() {
		i.client = docuseal.NewClient(cfg.APIKey, cfg.BaseURL, time.Duration(cfg.Timeout)*time.Millisecond)
	}
	return i
}

// NewInitiatorWithClient wires an existing document client; used by tests.
func NewInitiatorWithClient(client DocumentClient, cfg config.DocuSealConfig, log logger.Logger) *Initiator {
	return &Initiator{
		client: client,
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "initiator"}),
	}
}

// CreateSession starts a signing session for the applicant. Returns
// (nil, nil) when the integration is not configured.
func (i *Initiator) CreateSession(ctx context.Context, payload models.ApplicationPayload) (*models.SessionDescriptor, error) {
	if i.client == nil {
		metrics.DispatchAttempts.WithLabelValues(models.ChannelDocument, models.StatusSkipped).Inc()
		i.logger.Debug("document channel not configured, skipping", nil)
		return nil, nil
	}

	req := &docuseal.SubmissionRequest{
		TemplateID: i.cfg.TemplateID,
		Submitters: []docuseal.Submitter{
			{
				Email:      payload.Email,
				Name:       payload.ContactName,
				Role:       submitterRole,
				Phone:      payload.Phone,
				ExternalID: payload.BusinessName + "-" + uuid.New().String(),
			},
		},
		SendEmail:            true,
		ReplyTo:              i.cfg.ReplyTo,
		CompletedRedirectURL: i.cfg.RedirectURL,
	}

	start := time.Now()
	resp, err := i.client.CreateSubmission(ctx, req)
	metrics.DispatchDuration.WithLabelValues(models.ChannelDocument).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DispatchAttempts.WithLabelValues(models.ChannelDocument, models.StatusFailed).Inc()
		i.logger.Error("document session creation failed", map[string]interface{}{
			"error":    err,
			"business": payload.BusinessName,
		})
		return nil, err
	}

	metrics.DispatchAttempts.WithLabelValues(models.ChannelDocument, models.StatusSent).Inc()
	i.logger.Info("document session created", map[string]interface{}{
		"sessionId": resp.ID,
		"slug":      resp.Slug,
		"status":    resp.Status,
	})

	return &models.SessionDescriptor{
		SessionID:  resp.ID,
		Slug:       resp.Slug,
		SigningURL: resp.SigningURL(),
		Status:     resp.Status,
	}, nil
}
