// Application initialization and setup.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ethlytics/chainchat/pkg/logger"
	"github.com/ethlytics/chainchat/pkg/mcpclient"
)

// App holds the application state and dependencies.
type App struct {
	Config  *Config
	LLM     *LLMClient
	Backend *mcpclient.Client
	Session *Session
	Log     logger.Logger
}

// NewApp connects to the MCP server, discovers tools, and wires the LLM
// client. The caller must Close the returned App.
func NewApp(ctx context.Context, config *Config) (*App, error) {
	// Validate API key
	if config.GroqAPIKey == "" {
		return nil, errors.New("GROQ_API_KEY is not set")
	}

	appLog := logger.NewWriterLogger(os.Stderr)

	spec := mcpclient.DefaultServerSpec()
	if config.ServerConfig != "" {
		loaded, err := mcpclient.LoadServerSpec(config.ServerConfig)
		if err != nil {
			return nil, fmt.Errorf("load server config: %w", err)
		}
		spec = loaded
	}

	fmt.Println("Connecting to ClickHouse MCP server...")
	backend, err := mcpclient.Connect(ctx, spec, appLog)
	if err != nil {
		return nil, fmt.Errorf("connect to MCP server: %w", err)
	}
	fmt.Println("MCP connection established and initialized")

	// Discovery failure is non-fatal: the prompt degrades to "no tools".
	tools, err := backend.ListTools(ctx)
	if err != nil {
		logger.Warn(appLog, "could not discover tools", err.Error())
		tools = nil
	}
	fmt.Printf("Discovered %d MCP tools:\n", len(tools))
	for _, tool := range tools {
		fmt.Printf("   - %s: %s\n", tool.Name, sanitizeLine(tool.Description))
	}

	if config.Verbose {
		log.Printf("[verbose] app init: model=%s base_url=%s server_config=%s tools=%d", config.GroqModel, config.GroqBaseURL, config.ServerConfig, len(tools))
	}

	return &App{
		Config:  config,
		LLM:     newLLMClient(config, tools),
		Backend: backend,
		Session: NewSession(tools),
		Log:     appLog,
	}, nil
}

// Close tears down the MCP session. Safe to call on both normal and error exit.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	return a.Backend.Close()
}
