// Package tool exposes the gmail_send skill over the Model Context
// Protocol: one tool, two resources and one help prompt.
package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hal9000y/gmail-send-mcp/internal/mailer"
	"github.com/hal9000y/gmail-send-mcp/internal/skill"
	"github.com/hal9000y/gmail-send-mcp/internal/version"
)

type executor interface {
	Execute(ctx context.Context, req skill.Request) skill.Result
}

type resourceSvc interface {
	Status() skill.Status
	LastResult() *mailer.Outcome
}

type skillSvc interface {
	executor
	resourceSvc
}

// NewServer creates the MCP server with the gmail_send tool, the
// last-result and status resources, and the help prompt registered.
func NewServer(svc skillSvc) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: version.Name, Version: version.Version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name: skill.FunctionName,
		Description: "Send email via Gmail using App Password authentication. " +
			"Supports Markdown content conversion to HTML and provides detailed success/failure feedback.",
	}, NewSendEmail(svc).SendEmail)

	registerResources(server, svc)
	registerPrompts(server)

	return server
}
