package mailer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal9000y/gmail-send-mcp/internal/mailer"
)

type transportMock struct {
	SubmitFunc func(ctx context.Context, creds mailer.Credentials, msg *mailer.Message) error

	calls    int
	lastMsg  *mailer.Message
	lastAuth mailer.Credentials
}

func (m *transportMock) Submit(ctx context.Context, creds mailer.Credentials, msg *mailer.Message) error {
	m.calls++
	m.lastMsg = msg
	m.lastAuth = creds
	if m.SubmitFunc == nil {
		return nil
	}
	return m.SubmitFunc(ctx, creds, msg)
}

func TestSenderSuccess(t *testing.T) {
	transport := &transportMock{}
	sender := mailer.NewSender(transport)

	outcome := sender.Send(
		context.Background(),
		mailer.Credentials{Username: "dana@gmail.com", AppPassword: "abcd efgh ijkl mnop"},
		"rcpt@example.com", "Hi", "body", "<p>body</p>", "",
	)

	require.True(t, outcome.Success)
	assert.Equal(t, "Email sent successfully to rcpt@example.com", outcome.Message)
	assert.NotEmpty(t, outcome.Timestamp)
	assert.Empty(t, outcome.ErrorType)

	assert.Equal(t, 1, transport.calls)
	assert.Equal(t, "abcdefghijklmnop", transport.lastAuth.AppPassword, "credential spaces must be stripped")
	assert.Equal(t, "dana@gmail.com", transport.lastMsg.From.Name, "display name falls back to username")
}

func TestSenderUsesDisplayName(t *testing.T) {
	transport := &transportMock{}
	sender := mailer.NewSender(transport)

	sender.Send(
		context.Background(),
		mailer.Credentials{Username: "dana@gmail.com", AppPassword: "abcdefghijklmnop"},
		"rcpt@example.com", "Hi", "body", "<p>body</p>", "Dana R",
	)

	require.NotNil(t, transport.lastMsg)
	assert.Equal(t, "Dana R", transport.lastMsg.From.Name)
	assert.Equal(t, "dana@gmail.com", transport.lastMsg.From.Address)
}

func TestSenderFailureClassification(t *testing.T) {
	cases := []struct {
		name            string
		err             error
		expectedType    string
		expectedMessage string
	}{
		{
			name:            "authentication rejected",
			err:             &mailer.TransportError{Kind: mailer.FailureAuthentication, Err: errors.New("535 5.7.8 bad credentials")},
			expectedType:    "authentication_error",
			expectedMessage: "Authentication failed. Please check your username and App Password.",
		},
		{
			name:            "recipient rejected",
			err:             &mailer.TransportError{Kind: mailer.FailureRecipient, Err: errors.New("550 no such user")},
			expectedType:    "recipient_error",
			expectedMessage: "Recipient email address rejected: rcpt@example.com",
		},
		{
			name:            "connection dropped",
			err:             &mailer.TransportError{Kind: mailer.FailureConnection, Err: errors.New("EOF")},
			expectedType:    "connection_error",
			expectedMessage: "Lost connection to Gmail server",
		},
		{
			name:            "other transport fault",
			err:             &mailer.TransportError{Kind: mailer.FailureExecution, Err: errors.New("boom")},
			expectedType:    "execution_error",
			expectedMessage: "Failed to send email: boom",
		},
		{
			name:            "unclassified error",
			err:             errors.New("something odd"),
			expectedType:    "execution_error",
			expectedMessage: "Failed to send email: something odd",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transport := &transportMock{
				SubmitFunc: func(context.Context, mailer.Credentials, *mailer.Message) error {
					return tc.err
				},
			}
			sender := mailer.NewSender(transport)

			outcome := sender.Send(
				context.Background(),
				mailer.Credentials{Username: "dana@gmail.com", AppPassword: "abcdefghijklmnop"},
				"rcpt@example.com", "Hi", "body", "<p>body</p>", "",
			)

			require.False(t, outcome.Success)
			assert.Equal(t, tc.expectedType, outcome.ErrorType)
			assert.Equal(t, tc.expectedMessage, outcome.Message)
			assert.NotEmpty(t, outcome.Details)
			assert.Empty(t, outcome.Timestamp)
		})
	}
}
