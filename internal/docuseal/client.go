// Package docuseal wraps the DocuSeal submissions API. A submission here is
// a provider-hosted signing session bound to a document template.
package docuseal

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

const signingBaseURL = "https://docuseal.com/s/"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *httpclient.Client
}

type Submitter struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ExternalID string `json:"external_id,omitempty"`
}

type SubmissionRequest struct {
	TemplateID           int         `json:"template_id"`
	Submitters           []Submitter `json:"submitters"`
	SendEmail            bool        `json:"send_email"`
	ReplyTo              string      `json:"reply_to,omitempty"`
	CompletedRedirectURL string      `json:"completed_redirect_url,omitempty"`
}

type SubmitterResponse struct {
	ID     int    `json:"id"`
	UUID   string `json:"uuid"`
	Email  string `json:"email"`
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Role   string `json:"role"`
}

type SubmissionResponse struct {
	ID         int                 `json:"id"`
	Slug       string              `json:"slug"`
	Status     string              `json:"status"`
	Submitters []SubmitterResponse `json:"submitters"`
	Template   struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"template"`
}

// SigningURL returns the hosted signing link for the first submitter.
func (r *SubmissionResponse) SigningURL() string {
	if len(r.Submitters) == 0 {
		return ""
	}
	return signingBaseURL + r.Submitters[0].Slug
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpclient.New(timeout),
	}
}

// CreateSubmission starts a signing session for the given submitters.
func (c *Client) CreateSubmission(ctx context.Context, submission *SubmissionRequest) (*SubmissionResponse, error) {
	jsonData, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	url := c.baseURL + "/submissions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("docuseal API error (status %d): %s", resp.StatusCode, string(body))
	}

	var submissionResp SubmissionResponse
	if err := json.Unmarshal(body, &submissionResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &submissionResp, nil
}
