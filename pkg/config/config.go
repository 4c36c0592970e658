// Package config handles loading and validating pagedo configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	charmLog "github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Title string    `yaml:"title"`
	UI    UIConfig  `yaml:"ui"`
	Log   LogConfig `yaml:"log"`
	Keys  KeyConfig `yaml:"keys"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	// TickInterval bounds how long the loop waits before re-rendering without input.
	TickInterval  time.Duration `yaml:"tick_interval"`
	MarkdownStyle string        `yaml:"markdown_style"` // glamour style name: dark, light, notty...
	NotifyOnError bool          `yaml:"notify_on_error"`
}

// LogConfig holds runtime logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty discards log output
}

// KeyConfig maps each action to the keys that trigger it.
type KeyConfig struct {
	Up         []string `yaml:"up"`
	Down       []string `yaml:"down"`
	Confirm    []string `yaml:"confirm"`
	Back       []string `yaml:"back"`
	Add        []string `yaml:"add"`
	AddItem    []string `yaml:"add_item"`
	AddGroup   []string `yaml:"add_group"`
	Delete     []string `yaml:"delete"`
	Toggle     []string `yaml:"toggle"`
	CycleState []string `yaml:"cycle_state"`
	Rename     []string `yaml:"rename"`
	Describe   []string `yaml:"describe"`
	Clear      []string `yaml:"clear"`
	Copy       []string `yaml:"copy"`
	Quit       []string `yaml:"quit"`
}

// Default returns a new Config with default values.
func Default() *Config {
	return &Config{
		Title: "pagedo",
		UI: UIConfig{
			TickInterval:  100 * time.Millisecond,
			MarkdownStyle: "dark",
		},
		Log: LogConfig{
			Level: "info",
		},
		Keys: KeyConfig{
			Up:         []string{"up", "k"},
			Down:       []string{"down", "j"},
			Confirm:    []string{"enter"},
			Back:       []string{"esc"},
			Add:        []string{"a"},
			AddItem:    []string{"i"},
			AddGroup:   []string{"g"},
			Delete:     []string{"d"},
			Toggle:     []string{"enter", "tab"},
			CycleState: []string{" "},
			Rename:     []string{"r"},
			Describe:   []string{"e"},
			Clear:      []string{"x"},
			Copy:       []string{"y"},
			Quit:       []string{"q", "esc"},
		},
	}
}

// Load reads the configuration from path.
// If the file doesn't exist or is empty, returns the default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive the TUI.
func (c *Config) Validate() error {
	if _, err := charmLog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.UI.TickInterval <= 0 {
		return fmt.Errorf("ui.tick_interval must be positive, got %s", c.UI.TickInterval)
	}

	bindings := []struct {
		name string
		keys []string
	}{
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"confirm", c.Keys.Confirm},
		{"back", c.Keys.Back},
		{"add", c.Keys.Add},
		{"add_item", c.Keys.AddItem},
		{"add_group", c.Keys.AddGroup},
		{"delete", c.Keys.Delete},
		{"toggle", c.Keys.Toggle},
		{"cycle_state", c.Keys.CycleState},
		{"rename", c.Keys.Rename},
		{"describe", c.Keys.Describe},
		{"clear", c.Keys.Clear},
		{"copy", c.Keys.Copy},
		{"quit", c.Keys.Quit},
	}
	for _, b := range bindings {
		if len(b.keys) == 0 {
			return fmt.Errorf("keys.%s must list at least one key", b.name)
		}
	}
	return nil
}

// Template is the commented config file written by `pagedo init`.
const Template = `# pagedo configuration

# Title shown above the page list.
title: "pagedo"

ui:
  # How long to wait for input before re-rendering.
  tick_interval: 100ms
  # glamour style used for item details (dark, light, notty, dracula...).
  markdown_style: dark
  # Send a desktop notification when an error alert is raised.
  notify_on_error: false

log:
  # debug, info, warn or error
  level: info
  # Log file path. Leave empty to discard logs.
  file: ""

keys:
  up: [up, k]
  down: [down, j]
  confirm: [enter]
  back: [esc]
  add: [a]
  add_item: [i]
  add_group: [g]
  delete: [d]
  toggle: [enter, tab]
  cycle_state: [" "]
  rename: [r]
  describe: [e]
  clear: [x]
  copy: [y]
  quit: [q, esc]
`

// WriteTemplate writes Template to path, creating parent directories.
// An existing file is only replaced when force is set.
func WriteTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
