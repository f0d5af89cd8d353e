package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/email"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	sender   email.Sender
	validate *validator.Validate
	from     string
	to       string
}

// NewContactUsecase wires the contact relay against an email provider.
func NewContactUsecase(sender email.Sender, validate *validator.Validate, cfg *config.Config) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		validate: validate,
		from:     cfg.MailFrom,
		to:       cfg.ContactEmailTo,
	}
}

// SendContactMessage validates the submission and relays it as exactly one
// outbound email. Validation failures wrap domain.ErrInvalidContact and
// never reach the provider.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	data := contactEmailData{
		Sender:    strings.TrimSpace(msg.Sender),
		FirstName: strings.TrimSpace(msg.FirstName),
		LastName:  strings.TrimSpace(msg.LastName),
		Message:   strings.TrimSpace(msg.Message),
	}

	// Binding tags already reject absent fields on the HTTP path; re-check
	// here so whitespace-only payloads and non-HTTP callers fail the same way.
	switch {
	case data.FirstName == "":
		return fmt.Errorf("%w: firstName is required", domain.ErrInvalidContact)
	case data.LastName == "":
		return fmt.Errorf("%w: lastName is required", domain.ErrInvalidContact)
	case data.Message == "":
		return fmt.Errorf("%w: message is required", domain.ErrInvalidContact)
	}
	if err := uc.validate.Var(data.Sender, "required,email"); err != nil {
		return fmt.Errorf("%w: sender must be a valid email address", domain.ErrInvalidContact)
	}

	html, err := data.renderHTML()
	if err != nil {
		return fmt.Errorf("rendering contact email: %w", err)
	}

	out := email.Message{
		From:    uc.from,
		To:      []string{uc.to},
		ReplyTo: data.Sender,
		Subject: fmt.Sprintf("Portfolio contact from %s %s <%s>", data.FirstName, data.LastName, data.Sender),
		Text:    data.renderText(),
		HTML:    html,
	}
	if err := uc.sender.Send(ctx, out); err != nil {
		return fmt.Errorf("sending contact email: %w", err)
	}
	return nil
}

type contactEmailData struct {
	Sender    string
	FirstName string
	LastName  string
	Message   string
}

func (d contactEmailData) renderText() string {
	return fmt.Sprintf("From: %s %s <%s>\n\n%s\n", d.FirstName, d.LastName, d.Sender, d.Message)
}

const contactEmailTemplate = `<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2 style="margin: 0 0 12px;">New contact form message</h2>
    <p><strong>From:</strong> {{.FirstName}} {{.LastName}} ({{.Sender}})</p>
    <blockquote style="border-left: 3px solid #888; margin: 8px 0; padding: 4px 12px; white-space: pre-wrap;">{{.Message}}</blockquote>
    <p style="color: #888; font-size: 12px;">Reply to this email to answer the visitor directly.</p>
  </body>
</html>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

func (d contactEmailData) renderHTML() (string, error) {
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
