package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/tarancss/adptools/tool"
)

// NewMCPServer returns an MCP server exposing every tool through d.
func NewMCPServer(d *tool.Dispatcher, version string) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(Name, version, mcpserver.WithToolCapabilities(false))

	for _, t := range tool.Tools() {
		s.AddTool(t, handler(d))
	}

	return s
}

// ServeStdio serves MCP over stdin/stdout until stdin is closed or the process is signalled.
func ServeStdio(d *tool.Dispatcher, version string) error {
	return mcpserver.ServeStdio(NewMCPServer(d, version))
}

func handler(d *tool.Dispatcher) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return Result(d.Dispatch(ctx, tool.Request{Name: req.Params.Name, Args: req.GetArguments()})), nil
	}
}

// Result converts a tool response into its MCP form.
func Result(res tool.Response) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(res.Content))
	for _, c := range res.Content {
		content = append(content, mcp.NewTextContent(c.Text))
	}

	return &mcp.CallToolResult{Content: content, IsError: res.IsError}
}
