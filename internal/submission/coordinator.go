// Package submission orchestrates one lead through validation, notification
// fan-out and optional document-session creation.
package submission

import (
	"context"
	"strings"
	"sync"
	"time"

	cerrors "mbc-landing-api/internal/common/errors"
	"mbc-landing-api/internal/common/logger"
	"mbc-landing-api/internal/common/metrics"
	"mbc-landing-api/internal/dispatch"
	"mbc-landing-api/internal/models"
	"mbc-landing-api/internal/validate"
)

const (
	successMessage   = "Application submitted successfully!"
	simulatedMessage = "Application submitted successfully (LOCAL DEVELOPMENT)"
	defaultSource    = "website"
)

// Coordinator runs the submission pipeline. The notification and document
// channels execute concurrently and are isolated from each other: either one
// failing never blocks or fails the other.
type Coordinator struct {
	resolver   *Resolver
	dispatcher *dispatch.Dispatcher
	initiator  *Initiator
	logger     logger.Logger
	now        func() time.Time
}

func NewCoordinator(resolver *Resolver, dispatcher *dispatch.Dispatcher, initiator *Initiator, log logger.Logger) *Coordinator {
	return &Coordinator{
		resolver:   resolver,
		dispatcher: dispatcher,
		initiator:  initiator,
		logger:     log.WithFields(map[string]interface{}{"component": "coordinator"}),
		now:        time.Now,
	}
}

// Submit validates the payload, resolves the environment and fans out to
// both channels. A downstream channel failing degrades the response, it
// never turns a recorded lead into an error; only validation failures and a
// total notification blackout are surfaced as errors.
func (c *Coordinator) Submit(ctx context.Context, raw models.ApplicationPayload, host string) (*models.SubmissionOutcome, *cerrors.StandardError) {
	metrics.SubmissionsReceived.Inc()

	payload, result := validate.Validate(raw)
	if !result.Valid {
		metrics.SubmissionsCompleted.WithLabelValues("client_error").Inc()
		return nil, cerrors.NewValidationFailedError(strings.Join(result.MissingFields(), ", "))
	}

	if payload.Timestamp == "" {
		payload.Timestamp = c.now().UTC().Format(time.RFC3339)
	}
	if payload.Source == "" {
		payload.Source = defaultSource
	}

	provider := c.resolver.Resolve(host)
	c.logger.Info("processing submission", map[string]interface{}{
		"business":    payload.BusinessName,
		"source":      payload.Source,
		"environment": provider.Environment,
		"transport":   provider.Sender.Name(),
		"recipients":  len(provider.Target.Recipients),
	})

	var (
		wg      sync.WaitGroup
		results []models.DispatchResult
		session *models.SessionDescriptor
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		results = c.dispatcher.Dispatch(ctx, payload, provider.Sender, provider.Target)
	}()
	go func() {
		defer wg.Done()
		// Session errors are logged by the initiator and collapsed here.
		session, _ = c.initiator.CreateSession(ctx, payload)
	}()
	wg.Wait()

	sent := dispatch.Succeeded(results)

	if sent == 0 && !provider.Simulated {
		metrics.SubmissionsCompleted.WithLabelValues("channel_error").Inc()
		return nil, cerrors.NewChannelSendFailedError(models.ChannelEmail, errAllDeliveriesFailed)
	}

	outcome := &models.SubmissionOutcome{
		Success:         true,
		Message:         successMessage,
		EmailsSent:      sent,
		TotalRecipients: len(provider.Target.Recipients),
		DocuSeal:        session,
	}
	if provider.Simulated {
		outcome.Message = simulatedMessage
	}
	for _, r := range results {
		if r.Success {
			outcome.EmailID = r.MessageID
			break
		}
	}

	metrics.SubmissionsCompleted.WithLabelValues("success").Inc()
	return outcome, nil
}
