package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbc-landing-api/internal/common/logger"
	"mbc-landing-api/internal/email"
	"mbc-landing-api/internal/models"
)

type MockSender struct {
	SendFunc func(ctx context.Context, msg email.Message) (string, error)

	mu    sync.Mutex
	calls []email.Message
}

func (m *MockSender) Name() string { return "mock" }

func (m *MockSender) Send(ctx context.Context, msg email.Message) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, msg)
	m.mu.Unlock()
	return m.SendFunc(ctx, msg)
}

func (m *MockSender) sentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.calls))
	for _, c := range m.calls {
		out = append(out, c.To)
	}
	return out
}

func testPayload() models.ApplicationPayload {
	return models.ApplicationPayload{
		BusinessName:  "Acme LLC",
		ContactName:   "Jane Doe",
		Email:         "jane@acme.com",
		Phone:         "555-0100",
		BusinessType:  "retail",
		DesiredAmount: "50000-100000",
		Timestamp:     "2025-06-01T15:04:05Z",
		Source:        "funding-1",
	}
}

func testTarget(recipients ...string) Target {
	return Target{
		Recipients: recipients,
		FromEmail:  "noreply@example.com",
		FromName:   "MBC Landing Page",
	}
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	renderer, err := email.NewRenderer("follow up")
	require.NoError(t, err)
	return New(renderer, logger.NewTestLogger(t), 5*time.Second)
}

func TestDispatcher_AllRecipientsSucceed(t *testing.T) {
	sender := &MockSender{
		SendFunc: func(_ context.Context, msg email.Message) (string, error) {
			return "id-" + msg.To, nil
		},
	}

	d := newTestDispatcher(t)
	results := d.Dispatch(context.Background(), testPayload(), sender, testTarget("a@example.com", "b@example.com"))

	require.Len(t, results, 2)
	assert.Equal(t, 2, Succeeded(results))
	for _, r := range results {
		assert.Equal(t, models.ChannelEmail, r.Channel)
		assert.True(t, r.Success)
		assert.Equal(t, "id-"+r.Recipient, r.MessageID)
		assert.Empty(t, r.Error)
	}
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, sender.sentTo())
}

func TestDispatcher_PartialFailure(t *testing.T) {
	sender := &MockSender{
		SendFunc: func(_ context.Context, msg email.Message) (string, error) {
			if msg.To == "bad@example.com" {
				return "", errors.New("mailbox unavailable")
			}
			return "ok-1", nil
		},
	}

	d := newTestDispatcher(t)
	results := d.Dispatch(context.Background(), testPayload(), sender, testTarget("good@example.com", "bad@example.com"))

	require.Len(t, results, 2)
	assert.Equal(t, 1, Succeeded(results))

	// Results stay in recipient order regardless of completion order.
	assert.Equal(t, "good@example.com", results[0].Recipient)
	assert.True(t, results[0].Success)
	assert.Equal(t, "bad@example.com", results[1].Recipient)
	assert.False(t, results[1].Success)
	assert.Contains(t, results[1].Error, "mailbox unavailable")
}

func TestDispatcher_AllRecipientsFail(t *testing.T) {
	sender := &MockSender{
		SendFunc: func(_ context.Context, _ email.Message) (string, error) {
			return "", errors.New("provider down")
		},
	}

	d := newTestDispatcher(t)
	results := d.Dispatch(context.Background(), testPayload(), sender, testTarget("a@example.com", "b@example.com"))

	require.Len(t, results, 2)
	assert.Equal(t, 0, Succeeded(results))
}

func TestDispatcher_SlowRecipientDoesNotBlockSiblings(t *testing.T) {
	release := make(chan struct{})
	sender := &MockSender{
		SendFunc: func(ctx context.Context, msg email.Message) (string, error) {
			if msg.To == "slow@example.com" {
				select {
				case <-release:
				case <-ctx.Done():
					return "", ctx.Err()
				}
			}
			return "ok", nil
		},
	}
	close(release)

	d := newTestDispatcher(t)
	start := time.Now()
	results := d.Dispatch(context.Background(), testPayload(), sender, testTarget("slow@example.com", "fast@example.com"))

	require.Len(t, results, 2)
	assert.Equal(t, 2, Succeeded(results))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDispatcher_RenderedContentInMessage(t *testing.T) {
	sender := &MockSender{
		SendFunc: func(_ context.Context, _ email.Message) (string, error) {
			return "ok", nil
		},
	}

	d := newTestDispatcher(t)
	d.Dispatch(context.Background(), testPayload(), sender, testTarget("a@example.com"))

	require.Len(t, sender.calls, 1)
	msg := sender.calls[0]
	assert.Equal(t, "New Lead: Funding Application from Acme LLC", msg.Subject)
	assert.Contains(t, msg.HTML, "Acme LLC")
	assert.Contains(t, msg.Text, "Acme LLC")
	assert.Equal(t, "noreply@example.com", msg.From)
	assert.Equal(t, "MBC Landing Page", msg.FromName)
}
