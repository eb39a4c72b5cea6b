package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Resource URIs exposed by the server.
const (
	ResourceLastResult = "skill://gmail_send/last_result"
	ResourceStatus     = "skill://gmail_send/status"
)

func registerResources(server *mcp.Server, svc resourceSvc) {
	server.AddResource(&mcp.Resource{
		URI:         ResourceLastResult,
		Name:        "gmail_send_last_result",
		Description: "Last email sending result with status and details",
		MIMEType:    "application/json",
	}, func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		var doc any = map[string]string{"message": "No emails sent yet"}
		if last := svc.LastResult(); last != nil {
			doc = last
		}
		return jsonResource(req.Params.URI, doc)
	})

	server.AddResource(&mcp.Resource{
		URI:         ResourceStatus,
		Name:        "gmail_send_status",
		Description: "Current status of the Gmail Send skill",
		MIMEType:    "application/json",
	}, func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return jsonResource(req.Params.URI, svc.Status())
	})
}

func jsonResource(uri string, doc any) (*mcp.ReadResourceResult, error) {
	text, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json.MarshalIndent failed: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(text),
			},
		},
	}, nil
}
