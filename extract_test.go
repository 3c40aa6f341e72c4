// Tests for tool-call extraction.
package main

import (
	"testing"
)

// TestExtractToolCallNoMarker validates the cheap no-call path.
func TestExtractToolCallNoMarker(t *testing.T) {
	inputs := []string{
		"",
		"The current epoch is 375012.",
		`{"tool_name": "list_databases", "arguments": {}}`,
		"tool_call: {\"tool_name\": \"x\"}",
	}
	for _, input := range inputs {
		if call := ExtractToolCall(input); call != nil {
			t.Fatalf("expected no call for %q, got %+v", input, call)
		}
	}
}

// TestExtractToolCallBasic validates the documented example.
func TestExtractToolCallBasic(t *testing.T) {
	call := ExtractToolCall(`TOOL_CALL: {"tool_name": "list_databases", "arguments": {}}`)
	if call == nil {
		t.Fatal("expected a tool call")
	}
	if call.ToolName != "list_databases" {
		t.Fatalf("unexpected tool name: %q", call.ToolName)
	}
	if len(call.Arguments) != 0 {
		t.Fatalf("expected empty arguments, got %+v", call.Arguments)
	}
}

// TestExtractToolCallNestedArguments verifies the depth scan handles nested
// objects.
func TestExtractToolCallNestedArguments(t *testing.T) {
	text := `I need more data.
TOOL_CALL: {
    "tool_name": "run_select_query",
    "arguments": {"query": "SELECT COUNT(*) FROM t_validator_last_status", "options": {"limit": 100}}
}`
	call := ExtractToolCall(text)
	if call == nil {
		t.Fatal("expected a tool call")
	}
	if call.ToolName != "run_select_query" {
		t.Fatalf("unexpected tool name: %q", call.ToolName)
	}
	options, ok := call.Arguments["options"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested options object, got %+v", call.Arguments["options"])
	}
	if options["limit"] != float64(100) {
		t.Fatalf("unexpected limit: %v", options["limit"])
	}
}

// TestExtractToolCallTrailingText verifies text after the closing brace is
// ignored.
func TestExtractToolCallTrailingText(t *testing.T) {
	call := ExtractToolCall(`TOOL_CALL: {"tool_name": "list_tables", "arguments": {"database": "goteth_mainnet"}} and then I will summarize.`)
	if call == nil {
		t.Fatal("expected a tool call")
	}
	if call.Arguments["database"] != "goteth_mainnet" {
		t.Fatalf("unexpected arguments: %+v", call.Arguments)
	}
}

// TestExtractToolCallMalformed verifies malformed payloads downgrade to no
// call without panicking.
func TestExtractToolCallMalformed(t *testing.T) {
	inputs := []string{
		// Missing final brace: the depth scan never balances and the whole
		// remainder fails JSON parsing.
		`TOOL_CALL: {"tool_name": "x", "arguments": {}`,
		// No object after the marker.
		`TOOL_CALL: run list_databases`,
		// Marker at end of text.
		`TOOL_CALL:`,
		// Invalid JSON inside balanced braces.
		`TOOL_CALL: {tool_name: list_databases}`,
	}
	for _, input := range inputs {
		if call := ExtractToolCall(input); call != nil {
			t.Fatalf("expected no call for %q, got %+v", input, call)
		}
	}
}

// TestBalancedObject pins the depth-scan slicing behavior.
func TestBalancedObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a": 1} tail`, `{"a": 1}`},
		{`{"a": {"b": 2}} tail`, `{"a": {"b": 2}}`},
		{`{"a": 1`, `{"a": 1`},
	}
	for _, tc := range cases {
		if got := balancedObject(tc.in); got != tc.want {
			t.Fatalf("balancedObject(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
