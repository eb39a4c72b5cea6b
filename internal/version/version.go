// Package version holds release metadata for the Gmail Send MCP server.
package version

import "fmt"

const (
	// Name is the server identity reported during MCP initialization.
	Name = "gmail-send-mcp-server"
	// Version is the semantic version of the server.
	Version = "1.0.0"
	// ReleaseDate is the release date of the current version.
	ReleaseDate = "2026-02-14"
	// Description summarizes what the server does.
	Description = "Send email via Gmail using App Password authentication with Markdown content support"
)

// String returns the descriptive version string.
func String() string {
	return fmt.Sprintf("Gmail Send MCP Server v%s (%s)", Version, ReleaseDate)
}

// Info returns the full version metadata document printed by -check.
func Info() map[string]any {
	return map[string]any{
		"name":         Name,
		"version":      Version,
		"release_date": ReleaseDate,
		"description":  Description,
		"features": []string{
			"Gmail SMTP email sending",
			"App Password authentication",
			"Markdown to HTML conversion",
			"MCP (Model Context Protocol) support",
			"Rich error reporting",
			"Email validation",
		},
	}
}
