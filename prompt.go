// System prompt assembly for tool-aware conversations.
package main

import (
	"fmt"
	"strings"

	"github.com/ethlytics/chainchat/pkg/mcpclient"
)

// BuildSystemPrompt constructs the system prompt: schema context, the
// discovered tool list, and the exact tool-call emission convention. Rebuilt
// on every completion call so it always reflects the discovered tools.
func BuildSystemPrompt(tools []mcpclient.ToolDescriptor) string {
	var sb strings.Builder
	sb.WriteString("You are a blockchain analytics assistant with access to Ethereum consensus layer data.\n\n")
	sb.WriteString(schemaContext)
	sb.WriteString("\n\nAVAILABLE MCP TOOLS:\n")
	sb.WriteString(toolListing(tools))
	sb.WriteString(`

INSTRUCTIONS:
1. When users ask questions about blockchain data, analyze what information you need
2. Use the appropriate MCP tools to query the database
3. For SQL queries, generate ClickHouse-compatible SQL with proper LIMIT clauses
4. Always explain your findings in clear, user-friendly language
5. If you need to make multiple queries, do them step by step

TOOL USAGE FORMAT:
When you need to use a tool, respond with:
` + toolCallMarker + ` {
    "tool_name": "tool_name_here",
    "arguments": {"arg1": "value1", "arg2": "value2"}
}

IMPORTANT TOOL SIGNATURES:
- list_databases(): No parameters needed
- list_tables(database): Requires database name (e.g., "goteth_mainnet")
- run_select_query(query): Only requires SQL query string, database connection is already established

After receiving tool results, provide a comprehensive answer based on the data.`)

	return strings.TrimSpace(sb.String())
}

// toolListing renders one "name: description" line per tool, degrading to a
// fixed notice when discovery returned nothing.
func toolListing(tools []mcpclient.ToolDescriptor) string {
	if len(tools) == 0 {
		return "(no tools available)"
	}

	var sb strings.Builder
	for _, tool := range tools {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", tool.Name, sanitizeLine(tool.Description)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// sanitizeLine keeps descriptions single-line and trimmed.
func sanitizeLine(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	return strings.TrimSpace(value)
}
