package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/duskydots/duskytune/internal/confedit"
	"github.com/duskydots/duskytune/internal/logging"
	"github.com/duskydots/duskytune/internal/panels"
	"github.com/duskydots/duskytune/internal/prefs"
	"github.com/duskydots/duskytune/internal/tui"
)

// Panel command flags
var (
	configPath string
	noHook     bool
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file to edit (overrides the panel default)")
	rootCmd.PersistentFlags().BoolVar(&noHook, "no-hook", false, "Skip the reload hook after writes")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logging is off when unset")

	for _, p := range panels.All() {
		rootCmd.AddCommand(panelCommand(p))
	}
}

func panelCommand(p panels.Panel) *cobra.Command {
	return &cobra.Command{
		Use:   p.Name,
		Short: p.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanel(p)
		},
	}
}

func runPanel(p panels.Panel) error {
	if err := initLogging(); err != nil {
		return err
	}
	defer logging.Sync()

	up, err := prefs.Load()
	if err != nil {
		return err
	}
	override := up.Panel(p.Name)

	path := configPath
	if path == "" {
		path = override.Config
	}
	if path == "" {
		if path, err = p.ConfigPath(); err != nil {
			return err
		}
	}

	store, err := confedit.Open(path)
	if err != nil {
		return fmt.Errorf("cannot edit %s: %w", path, err)
	}

	engine, err := tui.New(tui.Config{
		Title:      p.Title,
		Store:      store,
		Registry:   p.Build(),
		Hook:       resolveHook(p, up),
		Window:     up.Window,
		SeqTimeout: time.Duration(up.SeqTimeoutMS) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	return engine.Run()
}

func initLogging() error {
	if logLevel != "" {
		return logging.Initialize(logLevel)
	}
	return logging.InitializeFromEnv()
}

// resolveHook picks the reload command: the --no-hook flag and the NoHook
// preference win, then a per-panel preference override (a single "-"
// disables it), then the panel's built-in command.
func resolveHook(p panels.Panel, up *prefs.Prefs) func() {
	if noHook || up.NoHook {
		return nil
	}
	if override := up.Panel(p.Name).Hook; len(override) > 0 {
		if len(override) == 1 && override[0] == "-" {
			return nil
		}
		return panels.HookCommand(override)
	}
	return p.HookFunc()
}
