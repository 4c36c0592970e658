package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDirMacOS(t *testing.T) {
	home, _ := os.UserHomeDir()
	dir := defaultDirForOS("darwin")
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "pagedo"), dir)
}

func TestDefaultDirLinux(t *testing.T) {
	home, _ := os.UserHomeDir()

	// Without XDG_CONFIG_HOME
	t.Setenv("XDG_CONFIG_HOME", "")
	dir := defaultDirForOS("linux")
	assert.Equal(t, filepath.Join(home, ".config", "pagedo"), dir)

	// With XDG_CONFIG_HOME
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	dir = defaultDirForOS("linux")
	assert.Equal(t, filepath.Join("/custom/config", "pagedo"), dir)
}

func TestDefaultDirWindows(t *testing.T) {
	t.Setenv("APPDATA", `C:\Users\test\AppData\Roaming`)
	dir := defaultDirForOS("windows")
	assert.Equal(t, filepath.Join(`C:\Users\test\AppData\Roaming`, "pagedo"), dir)

	// Without APPDATA, with LOCALAPPDATA
	t.Setenv("APPDATA", "")
	t.Setenv("LOCALAPPDATA", `C:\Users\test\AppData\Local`)
	dir = defaultDirForOS("windows")
	assert.Equal(t, filepath.Join(`C:\Users\test\AppData\Local`, "pagedo"), dir)
}

func TestPathPrecedence(t *testing.T) {
	t.Setenv(EnvConfigPath, "/env/config.yaml")
	assert.Equal(t, "/flag/config.yaml", Path("/flag/config.yaml"))
	assert.Equal(t, "/env/config.yaml", Path(""))

	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, filepath.Join(DefaultDir(), "config.yaml"), Path(""))
}
