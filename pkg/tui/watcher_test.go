package tui

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingSender) last() (ConfigReloadedMsg, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		return ConfigReloadedMsg{}, false
	}
	msg, ok := r.msgs[len(r.msgs)-1].(ConfigReloadedMsg)
	return msg, ok
}

func TestWatcherReloadsConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: before\n"), 0o644))

	sender := &recordingSender{}
	cleanup, err := StartWatcher(path, sender)
	require.NoError(t, err)
	defer cleanup()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	time.Sleep(2 * reloadDebounce)
	_, ok := sender.last()
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("title: after\n"), 0o644))
	require.Eventually(t, func() bool {
		msg, ok := sender.last()
		return ok && msg.Err == nil && msg.Config != nil && msg.Config.Title == "after"
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	sender := &recordingSender{}
	cleanup, err := StartWatcher(path, sender)
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, os.WriteFile(path, []byte("ui:\n  tick_interval: -1s\n"), 0o644))
	require.Eventually(t, func() bool {
		msg, ok := sender.last()
		return ok && msg.Err != nil
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := StartWatcher(filepath.Join(t.TempDir(), "missing", "config.yaml"), &recordingSender{})
	assert.Error(t, err)
}
