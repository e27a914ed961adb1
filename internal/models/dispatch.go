package models

// Channel identifiers.
const (
	ChannelEmail    = "email"
	ChannelDocument = "docuseal"
)

// Dispatch statuses.
const (
	StatusSent      = "sent"
	StatusFailed    = "failed"
	StatusSimulated = "simulated"
	StatusSkipped   = "skipped"
)

// DispatchResult is the outcome of one delivery attempt to one channel
// recipient. Created per attempt, never mutated.
type DispatchResult struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient,omitempty"`
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SessionDescriptor is the opaque handle for a provider-hosted signing flow.
type SessionDescriptor struct {
	SessionID  int    `json:"sessionId"`
	Slug       string `json:"sessionSlug"`
	SigningURL string `json:"signingUrl"`
	Status     string `json:"status"`
}

// SubmissionOutcome is the aggregate returned to the client. Overall success
// means the lead was recorded, not that every downstream integration worked.
type SubmissionOutcome struct {
	Success         bool               `json:"success"`
	Message         string             `json:"message"`
	EmailsSent      int                `json:"emailsSent"`
	TotalRecipients int                `json:"totalRecipients"`
	EmailID         string             `json:"emailId,omitempty"`
	DocuSeal        *SessionDescriptor `json:"docuseal,omitempty"`
}
