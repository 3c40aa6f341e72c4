// Package main implements a command-line chatbot bridging a Groq-hosted LLM
// and a ClickHouse analytics MCP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
)

// main is the program entry point.
func main() {
	log.SetFlags(0)

	// Parse configuration
	config := ParseConfig()

	ctx := context.Background()

	// Initialize application (connects the MCP session)
	app, err := NewApp(ctx, config)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	if flag.Arg(0) == "test" {
		runSmokeTest(ctx, app)
		return
	}

	runInteractiveMode(ctx, app)
}
