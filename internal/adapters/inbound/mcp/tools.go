package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/appatch/internal/adapters/outbound/config"
	"github.com/abdidvp/appatch/internal/adapters/outbound/console"
	"github.com/abdidvp/appatch/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/appatch/internal/adapters/outbound/history"
	"github.com/abdidvp/appatch/internal/adapters/outbound/textfile"
	"github.com/abdidvp/appatch/internal/application"
	"github.com/abdidvp/appatch/internal/domain"
	"github.com/abdidvp/appatch/internal/domain/archipelago"
)

// applyResult is the appatch_apply payload: the report plus the log lines.
type applyResult struct {
	Report *domain.PatchReport `json:"report"`
	Log    []string            `json:"log"`
}

func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("appatch_apply",
			mcplib.WithDescription("Apply the full patch set to the Selaco tree without prompting to rebuild. Safe to repeat."),
		),
		handleApply(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("appatch_verify",
			mcplib.WithDescription("Check that every required stub and implementation file exists. Modifies nothing."),
		),
		handleVerify(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("appatch_rules",
			mcplib.WithDescription("Return the include rules and build-file insertions as JSON"),
			mcplib.WithString("target",
				mcplib.Description("Only return include rules for this file, relative to src/archipelago (e.g. core/ap_network.cpp)"),
			),
		),
		handleRules(),
	)
}

func newRunService(projectPath string, buf *bytes.Buffer) (*application.RunService, error) {
	return application.LoadRunService(config.New(), textfile.New(), console.New(buf), projectPath)
}

func handleApply(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		var buf bytes.Buffer
		svc, err := newRunService(projectPath, &buf)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.Run(projectPath)
		if errors.Is(err, domain.ErrProjectRootMissing) {
			return errorResult(err.Error()), nil
		}
		if svc.Config().HistoryEnabled() {
			_ = application.RecordRun(history.New(), gitinfo.New(), projectPath, report, time.Now())
		}
		if err != nil {
			return errorResult(fmt.Sprintf("apply failed: %v", err)), nil
		}
		return jsonResult(applyResult{Report: report, Log: logLines(&buf)})
	}
}

func handleVerify(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		var buf bytes.Buffer
		svc, err := newRunService(projectPath, &buf)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		report, err := svc.Verify(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(report.Verified)
	}
}

func handleRules() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		table := archipelago.Describe()
		target := request.GetString("target", "")
		if target == "" {
			return jsonResult(table)
		}

		var rules []archipelago.RuleView
		for _, r := range table.Includes {
			if r.Target == target {
				rules = append(rules, r)
			}
		}
		if len(rules) == 0 {
			return errorResult(fmt.Sprintf("no rules for %q", target)), nil
		}
		return jsonResult(rules)
	}
}

func logLines(buf *bytes.Buffer) []string {
	text := strings.TrimRight(buf.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// jsonResult marshals v to indented JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
