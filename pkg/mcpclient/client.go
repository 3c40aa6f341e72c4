// Package mcpclient is a session-oriented client for a stdio MCP tool server.
// It owns the single long-lived session, discovers the tool list once, and
// maps tool-reported failures to a typed error.
package mcpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ethlytics/chainchat/pkg/logger"
)

// noContentResult is returned when a tool succeeds without any content blocks.
const noContentResult = "Tool executed successfully but returned no content"

// transportBuilder is overridden in tests to stub the transport factory.
var transportBuilder = buildTransport

// ToolDescriptor describes one remote tool discovered from the server.
type ToolDescriptor struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// ToolError reports a tool that ran but signalled failure (isError result).
type ToolError struct {
	Tool   string
	Detail string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %s failed: %s", e.Tool, e.Detail)
}

// Client wraps one MCP client session over a stdio transport.
type Client struct {
	session *mcpsdk.ClientSession
	log     logger.Logger
}

// Connect launches the server subprocess described by spec and performs the
// MCP initialize handshake. The caller must Close the returned client.
func Connect(ctx context.Context, spec ServerSpec, log logger.Logger) (*Client, error) {
	if log == nil {
		log = logger.NopLogger{}
	}

	transport, err := transportBuilder(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("build transport: %w", err)
	}

	impl := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "chainchat", Version: "0.1.0"}, nil)
	session, err := impl.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connect mcp server: %w", err)
	}

	return &Client{session: session, log: log}, nil
}

// Close shuts down the underlying session, if any.
func (c *Client) Close() error {
	if c == nil || c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

// ListTools fetches the full tool list and returns it as a slice.
func (c *Client) ListTools(ctx context.Context) ([]ToolDescriptor, error) {
	var tools []ToolDescriptor
	for tool, err := range c.session.Tools(ctx, nil) {
		if err != nil {
			return nil, fmt.Errorf("list tools: %w", err)
		}
		tools = append(tools, toDescriptor(tool))
	}
	return tools, nil
}

// CallTool executes a named tool and returns its textual result. A result
// flagged isError comes back as a *ToolError; transport failures come back
// as plain errors.
func (c *Client) CallTool(ctx context.Context, name string, arguments map[string]any) (string, error) {
	if arguments == nil {
		arguments = map[string]any{}
	}
	c.log.Debug("calling tool", map[string]any{"tool": name, "arguments": arguments})

	result, err := c.session.CallTool(ctx, &mcpsdk.CallToolParams{Name: name, Arguments: arguments})
	if err != nil {
		return "", fmt.Errorf("call tool %s: %w", name, err)
	}

	text := contentText(result.Content)
	if result.IsError {
		return "", &ToolError{Tool: name, Detail: text}
	}
	if text == "" {
		return noContentResult, nil
	}
	return text, nil
}

// IsToolError reports whether err carries a tool-reported failure.
func IsToolError(err error) bool {
	var toolErr *ToolError
	return errors.As(err, &toolErr)
}

// toDescriptor converts an SDK tool into the local descriptor shape. The
// input schema is carried opaquely as raw JSON.
func toDescriptor(tool *mcpsdk.Tool) ToolDescriptor {
	if tool == nil {
		return ToolDescriptor{}
	}
	desc := ToolDescriptor{Name: tool.Name, Description: tool.Description}
	if tool.InputSchema != nil {
		if raw, err := json.Marshal(tool.InputSchema); err == nil {
			desc.InputSchema = raw
		}
	}
	return desc
}

// contentText extracts the textual payload from result content blocks: the
// first text block wins, any other first block is JSON-encoded.
func contentText(blocks []mcpsdk.Content) string {
	if len(blocks) == 0 {
		return ""
	}
	if text, ok := blocks[0].(*mcpsdk.TextContent); ok {
		return text.Text
	}
	raw, err := json.Marshal(blocks[0])
	if err != nil {
		return fmt.Sprintf("%v", blocks[0])
	}
	return string(raw)
}

// buildTransport constructs the stdio transport for the server subprocess.
func buildTransport(ctx context.Context, spec ServerSpec) (mcpsdk.Transport, error) {
	if strings.TrimSpace(spec.Command) == "" {
		return nil, errors.New("mcp server command is empty")
	}
	// #nosec G204 -- the command originates from the trusted server config file.
	cmd := exec.CommandContext(ctx, spec.Command, spec.Args...)
	cmd.Env = spec.environ()
	return &mcpsdk.CommandTransport{Command: cmd}, nil
}
