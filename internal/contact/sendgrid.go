package contact

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends mail through the SendGrid API.
type SendGridMailer struct {
	apiKey string
	from   string
}

func NewSendGridMailer(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{apiKey: apiKey, from: from}
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, plainText, html string) error {
	if m.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}

	fromEmail := mail.NewEmail("MangaStore", m.from)
	toEmail := mail.NewEmail("", to)
	message := mail.NewSingleEmail(fromEmail, subject, toEmail, plainText, html)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d body=%s", response.StatusCode, response.Body)
	}
	return nil
}
