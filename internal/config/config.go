// Package config reads process settings from the environment. A .env file
// loaded in main (godotenv) feeds the same variables during development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Settings struct {
	Host         string
	Port         int
	LogFile      string
	Backend      string
	Model        string
	OllamaHost   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	MaxBodyBytes int64
}

// FromEnv builds settings from BRIDGECREW_* and LLM_* variables, falling
// back to serve-on-localhost defaults.
func FromEnv() Settings {
	s := Settings{
		Host:         "127.0.0.1",
		Port:         8600,
		LogFile:      "bridgecrew.log",
		Backend:      "gemini",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // a full deliberation is many remote turns
		IdleTimeout:  60 * time.Second,
		MaxBodyBytes: 1 << 20,
	}
	if host := strings.TrimSpace(os.Getenv("BRIDGECREW_HOST")); host != "" {
		s.Host = host
	}
	if raw := strings.TrimSpace(os.Getenv("BRIDGECREW_PORT")); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil && port >= 0 && port <= 65535 {
			s.Port = port
		}
	}
	if path := strings.TrimSpace(os.Getenv("BRIDGECREW_LOG_FILE")); path != "" {
		s.LogFile = path
	}
	if backend := strings.TrimSpace(os.Getenv("LLM_BACKEND")); backend != "" {
		s.Backend = backend
	}
	s.Model = strings.TrimSpace(os.Getenv("LLM_MODEL"))
	s.OllamaHost = strings.TrimSpace(os.Getenv("OLLAMA_HOST"))
	return s
}

// Address returns the host:port the HTTP server binds.
func (s Settings) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
