// Tool-call extraction from free-text model output.
package main

import (
	"encoding/json"
	"log"
	"strings"
)

// toolCallMarker is the literal prefix the model uses to request a tool
// invocation. The system prompt and this parser must agree on it exactly.
const toolCallMarker = "TOOL_CALL:"

// ToolCallRequest is a tool invocation parsed out of one model response.
type ToolCallRequest struct {
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
}

// ExtractToolCall parses raw model output for an embedded tool call and
// returns nil when none is requested. Malformed payloads are downgraded to
// "no call" with a logged warning; the caller then treats the full text as a
// final answer.
func ExtractToolCall(text string) *ToolCallRequest {
	idx := strings.Index(text, toolCallMarker)
	if idx < 0 {
		return nil
	}

	rest := strings.TrimSpace(text[idx+len(toolCallMarker):])
	if !strings.HasPrefix(rest, "{") {
		return nil
	}

	var call ToolCallRequest
	if err := json.Unmarshal([]byte(balancedObject(rest)), &call); err != nil {
		log.Printf("warning: could not parse tool call: %v", err)
		return nil
	}
	return &call
}

// balancedObject returns the prefix of s up to the brace that closes the
// object opened by s[0], or all of s when the braces never balance (the
// remainder then fails JSON parsing upstream).
func balancedObject(s string) string {
	depth := 0
	for i, ch := range s {
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return s
}
