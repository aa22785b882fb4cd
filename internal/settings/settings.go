package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	appDirName      = "exprcalc"
	fileName        = "config.json"
	historyFileName = ".exprcalc_history"

	DefaultPrompt             = "==> "
	DefaultContinuationPrompt = "... "
)

type Settings struct {
	Prompt             string `json:"prompt"`
	ContinuationPrompt string `json:"continuationPrompt"`
	HistoryFile        string `json:"historyFile"`
	LogLevel           string `json:"logLevel,omitempty"`
}

func Default() *Settings {
	return &Settings{
		Prompt:             DefaultPrompt,
		ContinuationPrompt: DefaultContinuationPrompt,
	}
}

// DefaultPath returns the location of the settings file in the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}

	return filepath.Join(dir, appDirName, fileName), nil
}

// HistoryPath returns the REPL history file, defaulting to the home directory.
func (s *Settings) HistoryPath() (string, error) {
	if s.HistoryFile != "" {
		return s.HistoryFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home dir: %w", err)
	}

	return filepath.Join(home, historyFileName), nil
}

func Save(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save settings file: %w", err)
	}

	return nil
}

// Read reads the settings file. Fields missing from the file keep their
// default values.
func Read(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings file: %w", err)
	}

	return settings, nil
}

// ReadOrDefault is Read, except that a missing file yields the defaults.
func ReadOrDefault(path string) (*Settings, error) {
	settings, err := Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return settings, err
}
