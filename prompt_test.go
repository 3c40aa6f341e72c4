// Tests for system prompt assembly.
package main

import (
	"strings"
	"testing"

	"github.com/ethlytics/chainchat/pkg/mcpclient"
)

// TestBuildSystemPrompt verifies system prompt composition from discovered
// tools.
func TestBuildSystemPrompt(t *testing.T) {
	tools := []mcpclient.ToolDescriptor{
		{Name: "list_databases", Description: "List available databases"},
		{Name: "run_select_query", Description: "Run a read-only\nSQL query"},
	}

	prompt := BuildSystemPrompt(tools)
	if prompt == "" {
		t.Fatal("expected prompt output")
	}
	if !containsAll(prompt, []string{
		"ETHEREUM BLOCKCHAIN DATABASE SCHEMA",
		"AVAILABLE MCP TOOLS:",
		"- list_databases: List available databases",
		"- run_select_query: Run a read-only SQL query",
		"TOOL_CALL:",
		`"tool_name"`,
		`"arguments"`,
	}) {
		t.Fatalf("prompt missing expected content:\n%s", prompt)
	}
}

// TestBuildSystemPromptNoTools verifies the degraded listing when discovery
// returned nothing.
func TestBuildSystemPromptNoTools(t *testing.T) {
	prompt := BuildSystemPrompt(nil)
	if !strings.Contains(prompt, "(no tools available)") {
		t.Fatalf("expected no-tools notice:\n%s", prompt)
	}
}

// containsAll reports whether all substrings exist in text.
func containsAll(text string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(text, needle) {
			return false
		}
	}
	return true
}
