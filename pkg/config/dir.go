package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the config directory and the log prefix.
const AppName = "pagedo"

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "PAGEDO_CONFIG"

// DefaultDir returns the OS-appropriate config directory for pagedo.
//
//   - macOS:   ~/Library/Application Support/pagedo
//   - Linux:   $XDG_CONFIG_HOME/pagedo (fallback ~/.config/pagedo)
//   - Windows: %APPDATA%\pagedo (fallback %LOCALAPPDATA%\pagedo)
func DefaultDir() string {
	return defaultDirForOS(runtime.GOOS)
}

func defaultDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", AppName)
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, AppName)
		}
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, AppName)
		}
		return filepath.Join(home, AppName)
	default: // linux, freebsd, etc.
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			return filepath.Join(dir, AppName)
		}
		return filepath.Join(home, ".config", AppName)
	}
}

// Path resolves the config file path: an explicit flag value wins, then
// $PAGEDO_CONFIG, then config.yaml in DefaultDir.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(DefaultDir(), "config.yaml")
}
