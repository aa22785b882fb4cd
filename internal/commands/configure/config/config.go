package config

import (
	"fmt"
	"io"

	"github.com/artuross/exprcalc/internal/settings"
	"github.com/rs/zerolog"
)

type Flagger interface {
	String(name string) string
}

type Config struct {
	Path     string
	Settings settings.Settings
}

func Read(flags Flagger, defaultPath func() (string, error)) (*Config, error) {
	path := flags.String("config-file")
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return nil, err
		}

		path = p
	}

	prompt := flags.String("prompt")
	if prompt == "" {
		return nil, fmt.Errorf("flag --prompt may not be empty")
	}

	continuationPrompt := flags.String("continuation-prompt")
	if continuationPrompt == "" {
		return nil, fmt.Errorf("flag --continuation-prompt may not be empty")
	}

	logLevel := flags.String("repl-log-level")
	if logLevel != "" {
		if _, err := zerolog.ParseLevel(logLevel); err != nil {
			return nil, fmt.Errorf("flag --repl-log-level: %w", err)
		}
	}

	cfg := Config{
		Path: path,
		Settings: settings.Settings{
			Prompt:             prompt,
			ContinuationPrompt: continuationPrompt,
			HistoryFile:        flags.String("history-file"),
			LogLevel:           logLevel,
		},
	}

	return &cfg, nil
}

func Print(w io.Writer, cfg *Config) {
	fmt.Fprintln(w, "Writing settings:")
	fmt.Fprintf(w, "  Path: %s\n", cfg.Path)
	fmt.Fprintf(w, "  Prompt: %q\n", cfg.Settings.Prompt)
	fmt.Fprintf(w, "  Continuation Prompt: %q\n", cfg.Settings.ContinuationPrompt)
	fmt.Fprintf(w, "  History File: %s\n", cfg.Settings.HistoryFile)
	fmt.Fprintf(w, "  Log Level: %s\n", cfg.Settings.LogLevel)
}
