// Configuration management for the application.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// defaultModel is used when GROQ_MODEL is unset.
const defaultModel = "llama-3.1-70b-versatile"

// defaultBaseURL is Groq's OpenAI-compatible endpoint.
const defaultBaseURL = "https://api.groq.com/openai/v1"

// Config holds all application configuration from environment variables and
// command-line flags.
type Config struct {
	// Command-line flags
	ServerConfig string
	Verbose      bool

	// Environment variables
	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string
}

// ParseConfig parses command-line flags and environment variables to create a Config.
func ParseConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	var (
		serverConfig = flag.String("server_config", "", "YAML file describing the MCP server command (empty = built-in ClickHouse server)")
		verbose      = flag.Bool("verbose", false, "Verbose orchestration logging")
	)
	flag.Parse()

	return &Config{
		ServerConfig: strings.TrimSpace(*serverConfig),
		Verbose:      *verbose,
		GroqAPIKey:   strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GroqBaseURL:  envOr("GROQ_BASE_URL", defaultBaseURL),
		GroqModel:    envOr("GROQ_MODEL", defaultModel),
	}
}

// envOr returns the trimmed environment value or fallback when unset.
func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
