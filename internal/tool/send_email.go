package tool

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hal9000y/gmail-send-mcp/internal/skill"
)

// SendEmailRequest is the gmail_send tool input.
type SendEmailRequest struct {
	Username    string `json:"username" jsonschema:"Gmail username (email address) for authentication"`
	AppPassword string `json:"app_password" jsonschema:"Gmail App Password (16 characters, spaces optional), not the regular password"`
	Content     string `json:"content" jsonschema:"email content in Markdown format, converted to HTML for rich formatting"`
	ToEmail     string `json:"to_email" jsonschema:"recipient email address"`
	Subject     string `json:"subject,omitempty" jsonschema:"email subject line, defaults to 'Email from Gmail Send Skill'"`
	FromName    string `json:"from_name,omitempty" jsonschema:"display name for the sender, defaults to the username"`
}

// SendEmailResponse wraps the execution envelope returned to the client.
type SendEmailResponse struct {
	ToolResult    skill.Result `json:"tool_result"`
	ExecutionTime string       `json:"execution_time"`
	ToolName      string       `json:"tool_name"`
}

// NewSendEmail creates the gmail_send tool handler.
func NewSendEmail(svc executor) *SendEmail {
	return &SendEmail{svc: svc}
}

// SendEmail handles gmail_send invocations.
type SendEmail struct {
	svc executor
}

// SendEmail executes one send. A failed execution, whether validation
// or transport, surfaces as a tool error whose message embeds the
// error kind; the skill itself never lets a fault escape its envelope.
func (t *SendEmail) SendEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendEmailRequest,
) (*mcp.CallToolResult, SendEmailResponse, error) {
	result := t.svc.Execute(ctx, skill.Request{
		Username:    input.Username,
		AppPassword: input.AppPassword,
		Content:     input.Content,
		ToEmail:     input.ToEmail,
		Subject:     input.Subject,
		FromName:    input.FromName,
	})

	if !result.Success {
		return nil, SendEmailResponse{}, fmt.Errorf(
			"tool execution failed (%s): %s", result.Error.Type, result.Error.Message)
	}

	return nil, SendEmailResponse{
		ToolResult:    result,
		ExecutionTime: time.Now().Format(time.RFC3339),
		ToolName:      skill.FunctionName,
	}, nil
}
