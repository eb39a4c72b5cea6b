// Package mailer builds multipart email messages and delivers them
// through an authenticated SMTP session, classifying every transport
// fault into a fixed error taxonomy.
package mailer

import "fmt"

// FailureKind is the machine-readable classification of a failed send.
type FailureKind string

const (
	// FailureAuthentication means the server rejected the credentials.
	FailureAuthentication FailureKind = "authentication_error"
	// FailureRecipient means the server rejected the recipient address.
	FailureRecipient FailureKind = "recipient_error"
	// FailureConnection means the connection dropped mid-session.
	FailureConnection FailureKind = "connection_error"
	// FailureExecution covers every other transport fault.
	FailureExecution FailureKind = "execution_error"
)

// Outcome records the result of a single send attempt. It is stored in
// the last-result slot and serialized for the last_result resource.
type Outcome struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
	Details   string `json:"details,omitempty"`
}

// TransportError is the classified failure raised by a Transport.
// Exactly one kind applies to any given fault.
type TransportError struct {
	Kind FailureKind
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
