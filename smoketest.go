// Non-interactive smoke test: discovery, fixed tool calls, one LLM call, and
// one full orchestrated turn, with pass/fail printed per step.
package main

import (
	"context"
	"fmt"
)

// previewLimit caps printed result previews.
const previewLimit = 200

// runSmokeTest exercises each external collaborator once. Steps report
// pass/fail to the console; nothing is machine-asserted.
func runSmokeTest(ctx context.Context, app *App) {
	fmt.Println("\nRunning smoke test...")

	fmt.Printf("Discovery: %d tool(s) available\n", len(app.Session.Tools))

	toolSteps := []struct {
		name string
		args map[string]any
	}{
		{name: "list_databases", args: map[string]any{}},
		{name: "list_tables", args: map[string]any{"database": "goteth_mainnet"}},
	}
	for _, step := range toolSteps {
		result, err := app.Backend.CallTool(ctx, step.name, step.args)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", step.name, err)
			continue
		}
		fmt.Printf("PASS %s\n", step.name)
		fmt.Printf("   Result preview: %s\n", preview(result))
	}

	reply, err := app.LLM.Complete(ctx, "Reply with a one-sentence summary of what data you can query.", nil)
	if err != nil {
		fmt.Printf("FAIL llm_completion: %v\n", err)
	} else {
		fmt.Printf("PASS llm_completion\n")
		fmt.Printf("   Result preview: %s\n", preview(reply))
	}

	answer := ProcessTurn(ctx, app.LLM, app.Backend, app.Session, "How many databases are available?", app.Config.Verbose)
	fmt.Printf("PASS full_turn\n")
	fmt.Printf("   Answer preview: %s\n", preview(answer))

	fmt.Println("Smoke test completed")
}

// preview truncates long results for console output.
func preview(text string) string {
	if len(text) > previewLimit {
		return text[:previewLimit] + "..."
	}
	return text
}
