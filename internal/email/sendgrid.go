package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mbc-landing-api/internal/common/httpclient"
)

// SendGridSender delivers mail through the SendGrid v3 API.
type SendGridSender struct {
	apiKey     string
	baseURL    string
	httpClient *httpclient.Client
}

type sendGridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridPersonalization struct {
	To      []sendGridAddress `json:"to"`
	Subject string            `json:"subject"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Content          []sendGridContent         `json:"content"`
}

func NewSendGridSender(apiKey, baseURL string, timeout time.Duration) *SendGridSender {
	return &SendGridSender{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpclient.New(timeout),
	}
}

func (s *SendGridSender) Name() string { return "sendgrid" }

func (s *SendGridSender) Send(ctx context.Context, msg Message) (string, error) {
	payload := sendGridRequest{
		Personalizations: []sendGridPersonalization{
			{
				To:      []sendGridAddress{{Email: msg.To}},
				Subject: msg.Subject,
			},
		},
		From: sendGridAddress{Email: msg.From, Name: msg.FromName},
		// Plaintext part must come first per the v3 API contract.
		Content: []sendGridContent{
			{Type: "text/plain", Value: msg.Text},
			{Type: "text/html", Value: msg.HTML},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal email: %w", err)
	}

	url := s.baseURL + "/v3/mail/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("sendgrid API error (status %d): %s", resp.StatusCode, string(body))
	}

	return resp.Header.Get("X-Message-Id"), nil
}
