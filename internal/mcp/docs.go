package mcp

import (
	"context"
	"strings"

	"github.com/ganot/amrannot/internal/schema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const schemaResourceURI = "amrannot://schema/annotation-header"

func schemaResourceContent() string {
	var sb strings.Builder
	sb.WriteString("# AMRFinderPlus annotation header\n\n")
	sb.WriteString("An annotation file is tab-separated with exactly this header, ")
	sb.WriteString("or no content at all (an empty file means no hits).\n\n")
	for _, col := range schema.Header {
		sb.WriteString("- " + col + "\n")
	}
	sb.WriteString("\nThe columns " + strings.Join(schema.CoordinateColumns, ", "))
	sb.WriteString(" are optional, but only all together and in this order.\n")
	return sb.String()
}

func registerSchemaResource(server *sdkmcp.Server) {
	content := schemaResourceContent()

	server.AddResource(&sdkmcp.Resource{
		URI:         schemaResourceURI,
		Name:        "annotation-header",
		Title:       "Canonical annotation header",
		Description: "The column layout every annotation file must match",
		MIMEType:    "text/markdown",
		Size:        int64(len(content)),
	}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		uri := schemaResourceURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     content,
			}},
		}, nil
	})
}
