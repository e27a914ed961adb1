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

// ResendSender delivers mail through the Resend HTTP API.
type ResendSender struct {
	apiKey     string
	baseURL    string
	httpClient *httpclient.Client
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

type resendResponse struct {
	ID string `json:"id"`
}

func NewResendSender(apiKey, baseURL string, timeout time.Duration) *ResendSender {
	return &ResendSender{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpclient.New(timeout),
	}
}

func (s *ResendSender) Name() string { return "resend" }

func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	payload := resendRequest{
		From:    fmt.Sprintf("%s <%s>", msg.FromName, msg.From),
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal email: %w", err)
	}

	url := s.baseURL + "/emails"
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

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(body))
	}

	var sendResp resendResponse
	if err := json.Unmarshal(body, &sendResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return sendResp.ID, nil
}
