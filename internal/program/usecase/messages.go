package usecase

import (
	"fmt"
	"html"

	"github.com/greenlegacy/greenlegacy/internal/pkg/mail"
	"github.com/greenlegacy/greenlegacy/internal/program/entity"
)

func buildContactNotification(to string, c entity.Contact) mail.Message {
	body := fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:480px;margin:0 auto;padding:24px;border:1px solid #e0e0e0;border-radius:8px">
  <h2 style="color:#2e7d32;margin-top:0">New Contact Message</h2>
  <p><strong>From:</strong> %s (%s)</p>
  <p style="white-space:pre-wrap">%s</p>
</div>`, html.EscapeString(c.Name), html.EscapeString(c.Email), html.EscapeString(c.Message))

	return mail.Message{
		To:       []string{to},
		ReplyTo:  c.Email,
		Subject:  "New contact message from " + c.Name,
		TextBody: fmt.Sprintf("From: %s (%s)\n\n%s", c.Name, c.Email, c.Message),
		HTMLBody: body,
	}
}
