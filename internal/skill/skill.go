// Package skill implements the gmail_send tool: validation, markdown
// rendering, the send itself, and the envelope reported back to the
// protocol layer.
package skill

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hal9000y/gmail-send-mcp/internal/mailer"
	"github.com/hal9000y/gmail-send-mcp/internal/render"
	"github.com/hal9000y/gmail-send-mcp/internal/validate"
	"github.com/hal9000y/gmail-send-mcp/internal/version"
)

// FunctionName is the tool identity echoed in every envelope.
const FunctionName = "gmail_send"

// DefaultSubject is used when the caller supplies no subject.
const DefaultSubject = "Email from Gmail Send Skill"

// ValidationError is the error type for malformed caller input,
// reported before any network action.
const ValidationError = "validation_error"

// Request carries the caller-supplied parameters of one invocation.
// All fields are transient; credentials never outlive the call.
type Request struct {
	Username    string
	AppPassword string
	Content     string
	ToEmail     string
	Subject     string
	FromName    string
}

// SendDetails describes a successful send.
type SendDetails struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	From      string `json:"from"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
}

// ErrorInfo describes a failed invocation.
type ErrorInfo struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// Result is the structured envelope of one tool invocation: exactly
// one of Result or Error is set.
type Result struct {
	Success      bool         `json:"success"`
	FunctionName string       `json:"function_name"`
	Result       *SendDetails `json:"result,omitempty"`
	Error        *ErrorInfo   `json:"error,omitempty"`
}

// Config holds the transport endpoint, reported by the status resource.
type Config struct {
	SMTPHost string
	SMTPPort int
}

type emailSender interface {
	Send(ctx context.Context, creds mailer.Credentials, toEmail, subject, textBody, htmlBody, fromName string) mailer.Outcome
}

// Skill orchestrates validation, rendering and sending for the
// gmail_send tool and records every outcome in its store.
type Skill struct {
	cfg      Config
	sender   emailSender
	renderer *render.Chain
	store    *ResultStore
}

// New wires the skill together.
func New(cfg Config, sender emailSender, renderer *render.Chain, store *ResultStore) *Skill {
	return &Skill{cfg: cfg, sender: sender, renderer: renderer, store: store}
}

// Execute runs one invocation: trim and validate input, render the
// content, send, and record the outcome. It short-circuits on the
// first validation failure without touching the network, and recovers
// any panic into an execution_error so the protocol layer never sees
// an unhandled fault.
func (s *Skill) Execute(ctx context.Context, req Request) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("gmail_send panic recovered: %v", rec)
			res = errorResult(fmt.Sprintf("Unexpected error: %v", rec), string(mailer.FailureExecution), "")
		}
	}()

	username := strings.TrimSpace(req.Username)
	appPassword := strings.TrimSpace(req.AppPassword)
	content := strings.TrimSpace(req.Content)
	toEmail := strings.TrimSpace(req.ToEmail)
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = DefaultSubject
	}

	switch {
	case username == "":
		return validationFailure("Username is required")
	case appPassword == "":
		return validationFailure("App Password is required")
	case content == "":
		return validationFailure("Email content is required")
	case toEmail == "":
		return validationFailure("Recipient email address is required")
	case !validate.EmailAddress(username):
		return validationFailure("Invalid username email format")
	case !validate.EmailAddress(toEmail):
		return validationFailure("Invalid recipient email format")
	case !validate.AppPassword(appPassword):
		return validationFailure("Invalid App Password format. Should be 16 alphanumeric characters.")
	}

	log.Printf("sending email from %s to %s", username, toEmail)

	html := s.renderer.Render(content)
	outcome := s.sender.Send(
		ctx,
		mailer.Credentials{Username: username, AppPassword: appPassword},
		toEmail, subject, content, html, req.FromName,
	)
	s.store.Set(outcome)

	if !outcome.Success {
		return errorResult(outcome.Message, outcome.ErrorType, outcome.Details)
	}

	return Result{
		Success:      true,
		FunctionName: FunctionName,
		Result: &SendDetails{
			Message:   outcome.Message,
			Timestamp: outcome.Timestamp,
			From:      username,
			To:        toEmail,
			Subject:   subject,
		},
	}
}

// LastResult returns the most recent send outcome, or nil before the
// first send.
func (s *Skill) LastResult() *mailer.Outcome {
	return s.store.Last()
}

// Status describes skill readiness for the status resource.
type Status struct {
	SkillName       string   `json:"skill_name"`
	Version         string   `json:"version"`
	Status          string   `json:"status"`
	SMTPServer      string   `json:"smtp_server"`
	SMTPPort        int      `json:"smtp_port"`
	MarkdownSupport bool     `json:"markdown_support"`
	RendererTiers   []string `json:"renderer_tiers"`
	LastExecution   bool     `json:"last_execution"`
}

// Status reports the current skill state.
func (s *Skill) Status() Status {
	caps := s.renderer.Capabilities()
	return Status{
		SkillName:       FunctionName,
		Version:         version.Version,
		Status:          "ready",
		SMTPServer:      s.cfg.SMTPHost,
		SMTPPort:        s.cfg.SMTPPort,
		MarkdownSupport: caps.MarkdownSupport,
		RendererTiers:   caps.Tiers,
		LastExecution:   s.store.Last() != nil,
	}
}

func validationFailure(message string) Result {
	return errorResult(message, ValidationError, "")
}

func errorResult(message, errType, details string) Result {
	return Result{
		Success:      false,
		FunctionName: FunctionName,
		Error: &ErrorInfo{
			Message: message,
			Type:    errType,
			Details: details,
		},
	}
}
