// Turn orchestration: bounded LLM/tool round-trips for one user input.
package main

import (
	"context"
	"fmt"
	"log"
)

// maxToolIterations is the hard ceiling on tool-call rounds per user turn.
// It bounds each turn to at most 3 completion calls and 3 tool calls.
const maxToolIterations = 3

// comprehensiveAnswerPrompt is sent after a tool result has been folded into
// the transcript.
const comprehensiveAnswerPrompt = "Please provide a comprehensive answer based on the tool results above."

// exhaustedMessage is the defined terminal outcome when the iteration ceiling
// is hit without a final answer.
const exhaustedMessage = "I'm having trouble completing this request after multiple attempts."

// completer submits a transcript plus the current message and returns one
// completion text.
type completer interface {
	Complete(ctx context.Context, message string, history []Message) (string, error)
}

// toolInvoker executes a named remote tool with a JSON argument object.
type toolInvoker interface {
	CallTool(ctx context.Context, name string, arguments map[string]any) (string, error)
}

// turnState names the orchestrator states for one user turn.
type turnState int

const (
	stateAwaitingLLM turnState = iota
	stateInvoking
)

// ProcessTurn drives one user turn to a final answer. Every backend or tool
// failure is converted to a user-visible text; no error escapes to the caller.
// Tool exchanges are appended to the session transcript as they complete.
func ProcessTurn(ctx context.Context, llm completer, tools toolInvoker, session *Session, userMessage string, verbose bool) string {
	current := userMessage
	state := stateAwaitingLLM

	var response string
	var call *ToolCallRequest

	for iteration := 0; iteration < maxToolIterations; {
		switch state {
		case stateAwaitingLLM:
			text, err := llm.Complete(ctx, current, session.History())
			if err != nil {
				return fmt.Sprintf("Error getting LLM response: %v", err)
			}
			response = text

			call = ExtractToolCall(response)
			if call == nil {
				return response
			}
			state = stateInvoking

		case stateInvoking:
			if verbose {
				log.Printf("[verbose] iteration %d: executing tool %s with args %v", iteration+1, call.ToolName, call.Arguments)
			}
			result, err := tools.CallTool(ctx, call.ToolName, call.Arguments)
			if err != nil {
				return fmt.Sprintf("I encountered an error while querying the database: %v", err)
			}

			session.Append(
				Message{Role: roleAssistant, Content: response},
				Message{Role: roleUser, Content: "Tool result: " + result},
			)
			current = comprehensiveAnswerPrompt
			state = stateAwaitingLLM
			iteration++
		}
	}

	return exhaustedMessage
}
