package contact

import (
	"context"
	"fmt"
	"strings"
)

// Mailer delivers a rendered message. Satisfied by *SendGridMailer.
type Mailer interface {
	Send(ctx context.Context, to, subject, plainText, html string) error
}

// Service formats and dispatches contact-form notifications to a fixed
// recipient.
type Service struct {
	mailer    Mailer
	recipient string
}

func NewService(mailer Mailer, recipient string) *Service {
	return &Service{mailer: mailer, recipient: recipient}
}

// Send renders the notification and hands it to the mailer.
func (s *Service) Send(ctx context.Context, form Form) error {
	subject := "[MangaStore Contact] " + form.Sujet

	html := fmt.Sprintf(`<h2>Nouveau message de contact - MangaStore</h2>
<p><strong>Nom:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Sujet:</strong> %s</p>
<h3>Message:</h3>
<p>%s</p>

<hr>
<p><em>Ce message a été envoyé depuis le formulaire de contact du site MangaStore.</em></p>`,
		form.Nom, form.Email, form.Sujet, strings.ReplaceAll(form.Message, "\n", "<br>"))

	plainText := fmt.Sprintf(`Nouveau message de contact - MangaStore

Nom: %s
Email: %s
Sujet: %s

Message:
%s

Ce message a été envoyé depuis le formulaire de contact du site MangaStore.`,
		form.Nom, form.Email, form.Sujet, form.Message)

	return s.mailer.Send(ctx, s.recipient, subject, plainText, html)
}
