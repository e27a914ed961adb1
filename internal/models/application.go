package models

// ApplicationPayload is the canonical submitted lead. It exists only for the
// duration of one request; nothing is persisted.
type ApplicationPayload struct {
	BusinessName  string `json:"businessName"`
	ContactName   string `json:"contactName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	BusinessType  string `json:"businessType"`
	DesiredAmount string `json:"desiredAmount"` // range token like "50000-100000" or raw value
	Timestamp     string `json:"timestamp,omitempty"`
	Source        string `json:"source,omitempty"` // landing variant, e.g. "funding-1"
}

// RequiredFields lists the six business fields that must be non-empty, in
// the order they are reported when missing.
var RequiredFields = []string{
	"businessName",
	"contactName",
	"email",
	"phone",
	"businessType",
	"desiredAmount",
}
