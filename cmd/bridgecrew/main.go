package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"bridgecrew/internal/agent"
	"bridgecrew/internal/cli"
	"bridgecrew/internal/config"
	"bridgecrew/internal/deliberation"
	"bridgecrew/internal/llm_client"
	"bridgecrew/internal/logger"
	"bridgecrew/internal/shiplog"
)

func main() {
	// .env is optional; the environment itself may already be configured.
	_ = godotenv.Load()

	settings := config.FromEnv()

	if err := logger.Init(settings.LogFile); err != nil {
		log.Fatalf("Fatal Error: Could not initialize logger: %v", err)
	}

	// A missing provider is not fatal: the deliberation service falls
	// back to the deterministic local path and tags results accordingly.
	provider, err := llm_client.New(llm_client.Config{
		Backend:    settings.Backend,
		Model:      settings.Model,
		OllamaHost: settings.OllamaHost,
	})
	if err != nil {
		logger.Log.Printf("[Startup] LLM backend unavailable, serving fallback only: %v", err)
		provider = nil
	}

	gateway := agent.NewGateway(provider, agent.NewRegistry())

	app := cli.App{
		Settings: settings,
		Service:  deliberation.NewService(gateway),
		Store:    shiplog.NewStore(),
		Gateway:  gateway,
	}

	if err := cli.Execute(app); err != nil {
		os.Exit(1)
	}
}
