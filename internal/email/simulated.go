package email

import (
	"context"

	"github.com/google/uuid"

	"mbc-landing-api/internal/common/logger"
)

// SimulatedSender logs the message instead of delivering it. Used whenever
// transport credentials are absent so front-end flows stay testable without
// live providers.
type SimulatedSender struct {
	logger logger.Logger
}

func NewSimulatedSender(log logger.Logger) *SimulatedSender {
	return &SimulatedSender{
		logger: log.WithFields(map[string]interface{}{"transport": "simulated"}),
	}
}

func (s *SimulatedSender) Name() string { return "simulated" }

func (s *SimulatedSender) Send(_ context.Context, msg Message) (string, error) {
	preview := msg.Text
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	s.logger.Info("LOCAL DEVELOPMENT - email simulation", map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
		"preview": preview,
	})
	return "simulated-" + uuid.New().String(), nil
}
