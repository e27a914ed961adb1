package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"mbc-landing-api/internal/models"
)

//go:embed templates
var templateFS embed.FS

const (
	htmlTemplateFile = "templates/notification.html.tmpl"
	textTemplateFile = "templates/notification.txt.tmpl"

	// Lead timestamps are localized to the sales team's timezone.
	displayTimezone = "America/New_York"
)

// Subject builds the notification subject line for a lead.
func Subject(businessName string) string {
	return fmt.Sprintf("New Lead: Funding Application from %s", businessName)
}

// templateData is the rendering context shared by both representations.
type templateData struct {
	BusinessName    string
	ContactName     string
	Email           string
	Phone           string
	BusinessType    string
	DesiredAmount   string
	Source          string
	SubmittedAt     string
	ReceivedAt      string
	FollowUpMessage string
}

// Renderer produces the HTML and plaintext bodies for a lead notification.
type Renderer struct {
	html            *htmltemplate.Template
	text            *texttemplate.Template
	loc             *time.Location
	followUpMessage string
	now             func() time.Time
}

func NewRenderer(followUpMessage string) (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, htmlTemplateFile)
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, textTemplateFile)
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}

	loc, err := time.LoadLocation(displayTimezone)
	if err != nil {
		loc = time.UTC
	}

	return &Renderer{
		html:            html,
		text:            text,
		loc:             loc,
		followUpMessage: followUpMessage,
		now:             time.Now,
	}, nil
}

// Render returns the HTML and plaintext bodies for the payload.
func (r *Renderer) Render(p models.ApplicationPayload) (string, string, error) {
	received := r.now().In(r.loc).Format("Monday, January 2, 2006 3:04 PM MST")

	data := templateData{
		BusinessName:    p.BusinessName,
		ContactName:     p.ContactName,
		Email:           p.Email,
		Phone:           p.Phone,
		BusinessType:    p.BusinessType,
		DesiredAmount:   p.DesiredAmount,
		Source:          p.Source,
		SubmittedAt:     p.Timestamp,
		ReceivedAt:      received,
		FollowUpMessage: r.followUpMessage,
	}

	var htmlBuf bytes.Buffer
	if err := r.html.ExecuteTemplate(&htmlBuf, "notification.html.tmpl", data); err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}

	var textBuf bytes.Buffer
	if err := r.text.ExecuteTemplate(&textBuf, "notification.txt.tmpl", data); err != nil {
		return "", "", fmt.Errorf("render text body: %w", err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}
