package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
)

// Credentials authenticate one SMTP session. They are caller-supplied
// per call and never stored.
type Credentials struct {
	Username    string
	AppPassword string
}

// Transport submits one built message over an outbound mail session.
// Implementations classify every failure as a *TransportError.
type Transport interface {
	Submit(ctx context.Context, creds Credentials, msg *Message) error
}

// SMTPTransport delivers mail through an SMTP submission endpoint
// using STARTTLS and AUTH PLAIN. One connection per Submit, no retry.
type SMTPTransport struct {
	Host string
	Port int
}

// Addr returns the host:port the transport connects to.
func (t *SMTPTransport) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// Submit runs the fixed session sequence: connect, EHLO, STARTTLS,
// authenticate, hand the message to exactly one recipient, quit.
// The context bounds connection establishment only; an in-flight
// session runs until the server or the OS ends it.
func (t *SMTPTransport) Submit(ctx context.Context, creds Credentials, msg *Message) error {
	raw, err := msg.Build()
	if err != nil {
		return &TransportError{Kind: FailureExecution, Err: fmt.Errorf("msg.Build failed: %w", err)}
	}

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", t.Addr())
	if err != nil {
		return classify(FailureExecution, fmt.Errorf("dial %s failed: %w", t.Addr(), err))
	}

	client, err := smtp.NewClient(conn, t.Host)
	if err != nil {
		_ = conn.Close()
		return classify(FailureExecution, fmt.Errorf("smtp.NewClient failed: %w", err))
	}
	defer func() {
		if err := client.Quit(); err != nil {
			log.Printf("client.Quit failed: %v", err)
		}
	}()

	if err := client.StartTLS(&tls.Config{ServerName: t.Host}); err != nil {
		return classify(FailureExecution, fmt.Errorf("STARTTLS failed: %w", err))
	}

	auth := smtp.PlainAuth("", creds.Username, creds.AppPassword, t.Host)
	if err := client.Auth(auth); err != nil {
		return classify(FailureAuthentication, fmt.Errorf("AUTH failed: %w", err))
	}

	if err := client.Mail(creds.Username); err != nil {
		return classify(FailureExecution, fmt.Errorf("MAIL FROM failed: %w", err))
	}
	if err := client.Rcpt(msg.To); err != nil {
		return classify(FailureRecipient, fmt.Errorf("RCPT TO failed: %w", err))
	}

	w, err := client.Data()
	if err != nil {
		return classify(FailureExecution, fmt.Errorf("DATA failed: %w", err))
	}
	if _, err := w.Write(raw); err != nil {
		_ = w.Close()
		return classify(FailureExecution, fmt.Errorf("message write failed: %w", err))
	}
	if err := w.Close(); err != nil {
		return classify(FailureExecution, fmt.Errorf("message close failed: %w", err))
	}

	return nil
}

// classify wraps err as a TransportError. A dropped connection trumps
// the step-specific kind: whatever stage it surfaces at, it is a
// connection failure. Recipient rejections must carry an SMTP reply,
// otherwise they degrade to the step kind.
func classify(stepKind FailureKind, err error) *TransportError {
	if droppedConnection(err) {
		return &TransportError{Kind: FailureConnection, Err: err}
	}
	if stepKind == FailureRecipient && !isSMTPReply(err) {
		stepKind = FailureExecution
	}
	return &TransportError{Kind: stepKind, Err: err}
}

func droppedConnection(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		// Dial refusals are not mid-session drops.
		return opErr.Op != "dial"
	}
	return false
}

func isSMTPReply(err error) bool {
	var protoErr *textproto.Error
	return errors.As(err, &protoErr)
}
