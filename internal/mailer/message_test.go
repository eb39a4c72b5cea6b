package mailer_test

import (
	"bytes"
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal9000y/gmail-send-mcp/internal/mailer"
)

func TestMessageBuild(t *testing.T) {
	msg := &mailer.Message{
		From:     mail.Address{Name: "Dana", Address: "dana@gmail.com"},
		To:       "rcpt@example.com",
		Subject:  "Weekly report",
		TextBody: "# Report\nAll good.",
		HTMLBody: "<h1>Report</h1><p>All good.</p>",
	}

	raw, err := msg.Build()
	require.NoError(t, err)

	parsed, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "rcpt@example.com", parsed.Header.Get("To"))
	assert.Equal(t, "Weekly report", parsed.Header.Get("Subject"))
	assert.Equal(t, "1.0", parsed.Header.Get("MIME-Version"))
	assert.Contains(t, parsed.Header.Get("From"), "dana@gmail.com")
	assert.Contains(t, parsed.Header.Get("From"), "Dana")
	assert.Contains(t, parsed.Header.Get("Content-Type"), "multipart/alternative")
	assert.NotEmpty(t, parsed.Header.Get("Date"))

	body := string(raw)
	plainIdx := strings.Index(body, `text/plain; charset="utf-8"`)
	htmlIdx := strings.Index(body, `text/html; charset="utf-8"`)
	require.GreaterOrEqual(t, plainIdx, 0, "plain part missing")
	require.GreaterOrEqual(t, htmlIdx, 0, "html part missing")
	assert.Less(t, plainIdx, htmlIdx, "plain part must precede the html alternative")
	assert.Contains(t, body, "Content-Transfer-Encoding: quoted-printable")
	assert.Contains(t, body, "<h1>Report</h1>")
}

func TestMessageBuildEncodesNonASCII(t *testing.T) {
	msg := &mailer.Message{
		From:     mail.Address{Address: "dana@gmail.com"},
		To:       "rcpt@example.com",
		Subject:  "Résumé attached",
		TextBody: "héllo",
		HTMLBody: "<p>héllo</p>",
	}

	raw, err := msg.Build()
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, "=?utf-8?", "subject should be Q-encoded")
	assert.Contains(t, body, "h=C3=A9llo", "body should be quoted-printable")
	assert.NotContains(t, body, "Subject: Résumé")
}
