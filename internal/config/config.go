// SPDX-License-Identifier: Apache-2.0

// Package config handles application configuration: reading and writing the
// YAML defaults file and resolving user-supplied paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mecaneer23/todo/internal/todo"
)

// Config represents the top-level application configuration. Every field
// can be overridden by a CLI flag; the file only supplies defaults.
type Config struct {
	// File is the default list file opened when no argument is given
	File string `yaml:"file,omitempty"`

	// Header is the text shown above the list
	Header string `yaml:"header,omitempty"`

	// Autosave writes the file after every mutation
	Autosave bool `yaml:"autosave"`

	// Strikethrough strikes out completed entries
	Strikethrough bool `yaml:"strikethrough"`

	// HelpFile is the markdown file holding the controls table
	HelpFile string `yaml:"help_file,omitempty"`

	// Indent is the number of spaces per indent level
	Indent int `yaml:"indent,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		File:          "~/todo.txt",
		Header:        "TODO",
		Autosave:      true,
		Strikethrough: false,
		HelpFile:      "README.md",
		Indent:        todo.DefaultIndent,
	}
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "todo", "config.yaml"), nil
}

// LoadConfig reads the config file, layering it over Default so absent keys
// keep their defaults. A missing file is not an error.
func LoadConfig() (Config, error) {
	cfg := Default()

	configPath, err := DefaultConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if cfg.Indent <= 0 {
		cfg.Indent = todo.DefaultIndent
	}
	return cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// ResolvePath expands a leading "~/" to the user's home directory.
func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
