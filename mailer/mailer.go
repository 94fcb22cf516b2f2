// Package mailer sends checks and reminders through sendgrid
package mailer

import (
	"context"
	"fmt"
	"html"
	"net/mail"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/models"
)

const fromName = "Fleetcheck"

// Mailer delivers an email to a single recipient
type Mailer interface {
	Send(ctx context.Context, to string, email models.Email) error
}

// SendClient is the part of the sendgrid client used here
type SendClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// Sendgrid is a Mailer backed by the sendgrid v3 API
type Sendgrid struct {
	client SendClient
	from   string
}

var _ Mailer = (*Sendgrid)(nil)

// New returns a sendgrid mailer when an API key is configured, nil otherwise
func New(conf *config.Config) Mailer {
	if conf.SendgridAPIKey == "" {
		zap.S().Info("SENDGRID_API_KEY not set, mail is disabled")
		return nil
	}
	return NewSendgrid(sendgrid.NewSendClient(conf.SendgridAPIKey), conf.MailFrom)
}

// NewSendgrid wraps a sendgrid client sending from the given address
func NewSendgrid(client SendClient, from string) *Sendgrid {
	return &Sendgrid{client: client, from: from}
}

// Send implements Mailer
func (s *Sendgrid) Send(ctx context.Context, to string, email models.Email) error {
	addr, err := mail.ParseAddress(to)
	if err != nil {
		return fmt.Errorf("invalid recipient %q: %w", to, err)
	}

	htmlContent := email.HTML
	if htmlContent == "" {
		htmlContent = "<pre>" + html.EscapeString(email.Body) + "</pre>"
	}
	from := sgmail.NewEmail(fromName, s.from)
	message := sgmail.NewSingleEmail(from, email.Subject, sgmail.NewEmail(addr.Name, addr.Address), email.Body, htmlContent)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	zap.S().Infow("sent mail", "to", addr.Address, "subject", email.Subject)
	return nil
}
