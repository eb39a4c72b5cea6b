package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PromptHelp is the name of the usage prompt.
const PromptHelp = "gmail_send_help"

const helpText = `# Gmail Send Skill Usage

This skill allows you to send emails via Gmail using App Password authentication.

## Required Parameters:
- **username**: Your Gmail address (e.g., user@gmail.com)
- **app_password**: 16-character App Password from Google Account settings
- **content**: Email content in Markdown format
- **to_email**: Recipient email address

## Optional Parameters:
- **subject**: Email subject line (default: "Email from Gmail Send Skill")
- **from_name**: Display name for sender (default: uses username)

## App Password Setup:
1. Go to Google Account settings
2. Enable 2-Factor Authentication
3. Generate App Password for "Mail"
4. Use the 16-character password (spaces optional)

## Markdown Support:
The skill automatically converts Markdown to HTML for rich formatting:
- Headers: # ## ###
- Lists: - * 1.
- Links: [text](url)
- Bold: **text**
- Italic: *text*
- Code: ` + "`code`" + `

## Example:
` + "```json" + `
{
  "username": "sender@gmail.com",
  "app_password": "abcd efgh ijkl mnop",
  "to_email": "recipient@example.com",
  "subject": "Test Email",
  "content": "# Hello\n\nThis is a **test** email with *markdown* formatting.\n\n- Item 1\n- Item 2"
}
` + "```" + `
`

func registerPrompts(server *mcp.Server) {
	server.AddPrompt(&mcp.Prompt{
		Name:        PromptHelp,
		Description: "Get help and usage instructions for the Gmail Send skill",
	}, getPrompt)
}

func getPrompt(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	// The SDK rejects unregistered prompt names before this handler
	// runs; the guard stays for direct callers.
	if req.Params.Name != PromptHelp {
		return &mcp.GetPromptResult{
			Description: fmt.Sprintf("Prompt %s not found", req.Params.Name),
			Messages:    []*mcp.PromptMessage{},
		}, nil
	}

	return &mcp.GetPromptResult{
		Description: "Gmail Send Skill usage help",
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: helpText},
			},
		},
	}, nil
}
