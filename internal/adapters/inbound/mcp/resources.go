package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/appatch/internal/adapters/outbound/history"
	"github.com/abdidvp/appatch/internal/domain"
	"github.com/abdidvp/appatch/internal/domain/archipelago"
)

func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			"appatch://history",
			"Run History",
			mcplib.WithResourceDescription("Recorded patch runs for the project, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath),
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"appatch://stubs/{name}",
			"Stub File",
			mcplib.WithTemplateDescription("Fixed content of a generated stub, by file name (e.g. apuuid.hpp)"),
			mcplib.WithTemplateMIMEType("text/plain"),
		),
		handleStubResource(),
	)
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if entries == nil {
			entries = []domain.RunEntry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "appatch://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleStubResource() server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		name := templateArg(request.Params.Arguments, "name")
		if name == "" {
			return nil, fmt.Errorf("stub name is required")
		}
		stub, ok := findStub(name)
		if !ok {
			return nil, fmt.Errorf("unknown stub %q", name)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     stub.Content,
			},
		}, nil
	}
}

// templateArg reads a matched template variable, which may arrive as a
// string or a single-element slice.
func templateArg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func findStub(name string) (domain.StubFileSpec, bool) {
	all := append(archipelago.DependencyStubs(), archipelago.ImplementationStubs()...)
	for _, s := range all {
		if path.Base(s.Path) == name {
			return s, true
		}
	}
	return domain.StubFileSpec{}, false
}
