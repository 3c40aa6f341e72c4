// Interactive terminal mode for user interaction.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// runInteractiveMode runs the interactive chat session. Each user turn fully
// completes, including all nested LLM/tool round-trips, before the next input
// is read.
func runInteractiveMode(ctx context.Context, app *App) {
	printWelcome()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if isExitCommand(input) {
			fmt.Println("Goodbye!")
			break
		}

		fmt.Println("\nThinking...")

		answer := ProcessTurn(ctx, app.LLM, app.Backend, app.Session, input, app.Config.Verbose)

		fmt.Printf("\nAssistant: %s\n", answer)

		app.Session.Append(
			Message{Role: roleUser, Content: input},
			Message{Role: roleAssistant, Content: answer},
		)
		app.Session.Truncate()
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Error reading input: %v", err)
	}
}

// isExitCommand reports whether input is one of the reserved exit keywords.
func isExitCommand(input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "bye":
		return true
	}
	return false
}

// printWelcome prints the welcome banner.
func printWelcome() {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("Blockchain Analytics Chatbot (MCP + Groq)")
	fmt.Println("   Ask questions about Ethereum consensus layer data!")
	fmt.Println("   Type 'quit' to exit")
	fmt.Println(strings.Repeat("=", 80))
}
