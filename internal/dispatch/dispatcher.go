// Package dispatch implements the notification fan-out: one rendered lead
// email delivered independently to every configured recipient.
package dispatch

import (
	"context"
	"sync"
	"time"

	"mbc-landing-api/internal/common/logger"
	"mbc-landing-api/internal/common/metrics"
	"mbc-landing-api/internal/email"
	"mbc-landing-api/internal/models"
)

// Target describes where a notification goes and who it is from.
type Target struct {
	Recipients []string
	FromEmail  string
	FromName   string
}

type Dispatcher struct {
	renderer    *email.Renderer
	logger      logger.Logger
	sendTimeout time.Duration
}

func New(renderer *email.Renderer, log logger.Logger, sendTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		renderer:    renderer,
		logger:      log.WithFields(map[string]interface{}{"component": "dispatcher"}),
		sendTimeout: sendTimeout,
	}
}

// Dispatch renders the notification once and attempts delivery to every
// recipient in parallel through the given sender. All attempts settle before
// results are returned; one recipient failing never aborts the siblings.
func (d *Dispatcher) Dispatch(ctx context.Context, payload models.ApplicationPayload, sender email.Sender, target Target) []models.DispatchResult {
	htmlBody, textBody, err := d.renderer.Render(payload)
	if err != nil {
		d.logger.Error("notification render failed", map[string]interface{}{
			"error":    err,
			"business": payload.BusinessName,
		})
		results := make([]models.DispatchResult, 0, len(target.Recipients))
		for _, recipient := range target.Recipients {
			results = append(results, models.DispatchResult{
				Channel:   models.ChannelEmail,
				Recipient: recipient,
				Success:   false,
				Error:     "failed to render notification content",
			})
		}
		return results
	}

	subject := email.Subject(payload.BusinessName)

	results := make([]models.DispatchResult, len(target.Recipients))
	var wg sync.WaitGroup
	for i, recipient := range target.Recipients {
		wg.Add(1)
		go func(i int, recipient string) {
			defer wg.Done()
			results[i] = d.send(ctx, sender, email.Message{
				To:       recipient,
				From:     target.FromEmail,
				FromName: target.FromName,
				Subject:  subject,
				HTML:     htmlBody,
				Text:     textBody,
			})
		}(i, recipient)
	}
	wg.Wait()

	return results
}

func (d *Dispatcher) send(ctx context.Context, sender email.Sender, msg email.Message) models.DispatchResult {
	ctx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	start := time.Now()
	messageID, err := sender.Send(ctx, msg)
	metrics.DispatchDuration.WithLabelValues(models.ChannelEmail).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.DispatchAttempts.WithLabelValues(models.ChannelEmail, models.StatusFailed).Inc()
		d.logger.Error("email send failed", map[string]interface{}{
			"error":     err,
			"recipient": msg.To,
			"transport": sender.Name(),
		})
		return models.DispatchResult{
			Channel:   models.ChannelEmail,
			Recipient: msg.To,
			Success:   false,
			Error:     err.Error(),
		}
	}

	metrics.DispatchAttempts.WithLabelValues(models.ChannelEmail, models.StatusSent).Inc()
	d.logger.Info("email sent", map[string]interface{}{
		"recipient": msg.To,
		"messageId": messageID,
		"transport": sender.Name(),
	})
	return models.DispatchResult{
		Channel:   models.ChannelEmail,
		Recipient: msg.To,
		Success:   true,
		MessageID: messageID,
	}
}

// Succeeded counts the successful attempts in a result set.
func Succeeded(results []models.DispatchResult) int {
	n := 0
	for _, r := range results {
		if r.Success {
			n++
		}
	}
	return n
}
