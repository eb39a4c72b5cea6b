package mailer

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"net/textproto"
	"time"
)

// Message is a single outbound email with a plain-text body and an
// HTML alternative.
type Message struct {
	From     mail.Address
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Build serializes the message as multipart/alternative MIME: the
// plain-text part first, then the HTML part, both quoted-printable
// UTF-8. Mail clients pick the richest part they can display.
func (m *Message) Build() ([]byte, error) {
	var buf bytes.Buffer

	mpw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", m.From.String())
	fmt.Fprintf(&buf, "To: %s\r\n", m.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", m.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", mpw.Boundary())
	fmt.Fprintf(&buf, "\r\n")

	if err := writePart(mpw, "text/plain", m.TextBody); err != nil {
		return nil, err
	}
	if err := writePart(mpw, "text/html", m.HTMLBody); err != nil {
		return nil, err
	}

	if err := mpw.Close(); err != nil {
		return nil, fmt.Errorf("mpw.Close failed: %w", err)
	}

	return buf.Bytes(), nil
}

func writePart(mpw *multipart.Writer, contentType, body string) error {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType+`; charset="utf-8"`)
	header.Set("Content-Transfer-Encoding", "quoted-printable")

	part, err := mpw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("mpw.CreatePart failed: %w", err)
	}

	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(body)); err != nil {
		return fmt.Errorf("qp.Write failed: %w", err)
	}
	if err := qp.Close(); err != nil {
		return fmt.Errorf("qp.Close failed: %w", err)
	}

	return nil
}
