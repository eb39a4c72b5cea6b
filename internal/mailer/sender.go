package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Sender turns one send request into exactly one transport session and
// maps the result onto an Outcome. It never returns an error: every
// fault is folded into the outcome's taxonomy.
type Sender struct {
	transport Transport
}

// NewSender creates a Sender driving the given transport.
func NewSender(transport Transport) *Sender {
	return &Sender{transport: transport}
}

// Send builds the multipart message and submits it. The display name
// falls back to the authenticating username, and credential spaces are
// stripped before authentication.
func (s *Sender) Send(ctx context.Context, creds Credentials, toEmail, subject, textBody, htmlBody, fromName string) Outcome {
	if fromName == "" {
		fromName = creds.Username
	}
	creds.AppPassword = strings.ReplaceAll(creds.AppPassword, " ", "")

	msg := &Message{
		From:     mail.Address{Name: fromName, Address: creds.Username},
		To:       toEmail,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}

	if err := s.transport.Submit(ctx, creds, msg); err != nil {
		return failureOutcome(err, toEmail)
	}

	return Outcome{
		Success:   true,
		Message:   fmt.Sprintf("Email sent successfully to %s", toEmail),
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func failureOutcome(err error, toEmail string) Outcome {
	kind := FailureExecution
	details := err.Error()

	var terr *TransportError
	if errors.As(err, &terr) {
		kind = terr.Kind
		details = terr.Err.Error()
	}

	var message string
	switch kind {
	case FailureAuthentication:
		message = "Authentication failed. Please check your username and App Password."
	case FailureRecipient:
		message = fmt.Sprintf("Recipient email address rejected: %s", toEmail)
	case FailureConnection:
		message = "Lost connection to Gmail server"
	default:
		message = fmt.Sprintf("Failed to send email: %s", details)
	}

	return Outcome{
		Success:   false,
		Message:   message,
		ErrorType: string(kind),
		Details:   details,
	}
}
