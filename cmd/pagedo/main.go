package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	charmLog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stefanpenner/pagedo/pkg/config"
	"github.com/stefanpenner/pagedo/pkg/store"
	"github.com/stefanpenner/pagedo/pkg/tui"
)

var version = "dev"

type app struct {
	configPath string
	logFile    string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Keyboard-driven pages, groups and todos in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  pagedo

  # Write a commented config file with the defaults
  pagedo init
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(a)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default: $"+config.EnvConfigPath+" or the user config dir)")
	cmd.Flags().StringVar(&a.logFile, "log-file", "", "Write logs to this file (overrides log.file)")
	cmd.Flags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log.level)")

	cmd.AddCommand(newInitCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(a.configPath)
			if err := config.WriteTemplate(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, version)
		},
	}
}

func runTUI(a *app) error {
	path := config.Path(a.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "version", version, "config", path)

	s := store.NewStore()
	m := tui.NewModel(s, tui.Options{Config: cfg, Logger: logger})
	p := tea.NewProgram(m, tea.WithAltScreen())

	cleanup, err := tui.StartWatcher(path, p)
	if err != nil {
		logger.Warn("config watcher disabled", "err", err)
	} else {
		defer cleanup()
	}

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(tui.Model); ok {
		total, done := fm.Store().CountItems()
		logger.Info("session ended", "pages", fm.Store().Len(), "items", total, "done", done)
	}
	return nil
}

// newLogger builds the runtime logger. The terminal belongs to the TUI, so logs
// only go to a file; without one they are discarded.
func newLogger(cfg config.LogConfig) (*charmLog.Logger, func(), error) {
	level, err := charmLog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := charmLog.NewWithOptions(out, charmLog.Options{
		Level:           level,
		Prefix:          config.AppName,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.LogfmtFormatter,
	})
	return logger, closeFn, nil
}
