// Chat completion against the Groq OpenAI-compatible endpoint.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ethlytics/chainchat/pkg/mcpclient"
)

const (
	// completionTemperature is kept low for precise analytical answers.
	completionTemperature = 0.1
	completionMaxTokens   = 1000
)

// LLMClient submits a transcript to the completion backend and returns one
// text reply.
type LLMClient struct {
	client  openai.Client
	model   openai.ChatModel
	tools   []mcpclient.ToolDescriptor
	verbose bool
}

// newLLMClient builds a client for the configured model and endpoint.
func newLLMClient(config *Config, tools []mcpclient.ToolDescriptor) *LLMClient {
	opts := []option.RequestOption{}
	if config.GroqBaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.GroqBaseURL))
	}
	if config.GroqAPIKey != "" {
		opts = append(opts, option.WithAPIKey(config.GroqAPIKey))
	}
	return &LLMClient{
		client:  openai.NewClient(opts...),
		model:   openai.ChatModel(config.GroqModel),
		tools:   tools,
		verbose: config.Verbose,
	}
}

// Complete sends the system prompt, the windowed history, and the current
// message, and returns the single completion text.
func (l *LLMClient) Complete(ctx context.Context, message string, history []Message) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(BuildSystemPrompt(l.tools)))
	for _, entry := range history {
		switch entry.Role {
		case roleAssistant:
			messages = append(messages, openai.AssistantMessage(entry.Content))
		case roleSystem:
			messages = append(messages, openai.SystemMessage(entry.Content))
		default:
			messages = append(messages, openai.UserMessage(entry.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	if l.verbose {
		log.Printf("[verbose] sending completion request: model=%s messages=%d", l.model, len(messages))
	}

	completion, err := l.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       l.model,
		Messages:    messages,
		Temperature: openai.Float(completionTemperature),
		MaxTokens:   openai.Int(completionMaxTokens),
	})
	if err != nil {
		if l.verbose {
			log.Printf("[verbose] completion request failed: %v", err)
		}
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	if l.verbose {
		log.Printf("[verbose] completion received: finish_reason=%s", completion.Choices[0].FinishReason)
	}
	return completion.Choices[0].Message.Content, nil
}
