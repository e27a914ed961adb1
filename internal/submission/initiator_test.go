package submission

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbc-landing-api/internal/common/config"
	"mbc-landing-api/internal/common/logger"
	"mbc-landing-api/internal/docuseal"
	"mbc-landing-api/internal/models"
)

// MockDocumentClient implements DocumentClient for testing.
type MockDocumentClient struct {
	CreateSubmissionFunc func(ctx context.Context, submission *docuseal.SubmissionRequest) (*docuseal.SubmissionResponse, error)
	LastRequest          *docuseal.SubmissionRequest
}

func (m *MockDocumentClient) CreateSubmission(ctx context.Context, submission *docuseal.SubmissionRequest) (*docuseal.SubmissionResponse, error) {
	m.LastRequest = submission
	return m.CreateSubmissionFunc(ctx, submission)
}

func docusealTestConfig() config.DocuSealConfig {
	return config.DocuSealConfig{
		APIKey:      "ds_key",
		TemplateID:  123456,
		ReplyTo:     "support@example.com",
		RedirectURL: "https://example.com/thank-you",
	}
}

func TestInitiator_NotConfiguredIsNoOp(t *testing.T) {
	i := NewInitiator(config.DocuSealConfig{}, logger.NewNoOpLogger())

	session, err := i.CreateSession(context.Background(), models.ApplicationPayload{
		BusinessName: "Acme LLC",
		Email:        "owner@acme.com",
	})

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestInitiator_CreateSessionSuccess(t *testing.T) {
	mock := &MockDocumentClient{
		CreateSubmissionFunc: func(ctx context.Context, submission *docuseal.SubmissionRequest) (*docuseal.SubmissionResponse, error) {
			return &docuseal.SubmissionResponse{
				ID:     42,
				Slug:   "sub-slug",
				Status: "pending",
				Submitters: []docuseal.SubmitterResponse{
					{Slug: "signer-slug"},
				},
			}, nil
		},
	}
	i := NewInitiatorWithClient(mock, docusealTestConfig(), logger.NewNoOpLogger())

	session, err := i.CreateSession(context.Background(), models.ApplicationPayload{
		BusinessName: "Acme LLC",
		ContactName:  "Jordan Smith",
		Email:        "owner@acme.com",
		Phone:        "555-0100",
	})

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, 42, session.SessionID)
	assert.Equal(t, "sub-slug", session.Slug)
	assert.Equal(t, "https://docuseal.com/s/signer-slug", session.SigningURL)
	assert.Equal(t, "pending", session.Status)

	req := mock.LastRequest
	require.NotNil(t, req)
	assert.Equal(t, 123456, req.TemplateID)
	assert.True(t, req.SendEmail)
	assert.Equal(t, "support@example.com", req.ReplyTo)
	assert.Equal(t, "https://example.com/thank-you", req.CompletedRedirectURL)
	require.Len(t, req.Submitters, 1)
	assert.Equal(t, "owner@acme.com", req.Submitters[0].Email)
	assert.Equal(t, "Jordan Smith", req.Submitters[0].Name)
	assert.Equal(t, "Business Owner", req.Submitters[0].Role)
	assert.True(t, strings.HasPrefix(req.Submitters[0].ExternalID, "Acme LLC-"))
}

func TestInitiator_ProviderError(t *testing.T) {
	mock := &MockDocumentClient{
		CreateSubmissionFunc: func(ctx context.Context, submission *docuseal.SubmissionRequest) (*docuseal.SubmissionResponse, error) {
			return nil, errors.New("docuseal API error (status 422)")
		},
	}
	i := NewInitiatorWithClient(mock, docusealTestConfig(), logger.NewNoOpLogger())

	session, err := i.CreateSession(context.Background(), models.ApplicationPayload{
		BusinessName: "Acme LLC",
		Email:        "owner@acme.com",
	})

	assert.Error(t, err)
	assert.Nil(t, session)
}
