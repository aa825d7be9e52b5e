package panels

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/duskydots/duskytune/internal/logging"
	"github.com/duskydots/duskytune/internal/registry"
)

// Panel binds the editor engine to one configuration file.
type Panel struct {
	// Name is the subcommand name.
	Name string
	// Short is the one-line command description.
	Short string
	// Title is shown in the UI header.
	Title string
	// File is the config file name under the hypr config directory.
	File string
	// Hook is the reload command launched after successful writes. Nil
	// means the target program only reads its config at startup.
	Hook []string
	// Build constructs the panel's item registry.
	Build func() *registry.Registry
}

// All returns the panels in subcommand order.
func All() []Panel {
	return []Panel{
		hyprlandPanel(),
		idlePanel(),
		lockPanel(),
		sunsetPanel(),
		bordersPanel(),
	}
}

// ConfigPath resolves the panel's default target file under the Hyprland
// config directory: $XDG_CONFIG_HOME/hypr or $HOME/.config/hypr.
func (p Panel) ConfigPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "hypr", filepath.FromSlash(p.File)), nil
}

// HookFunc wraps the reload command for the engine: launch detached,
// discard output, log and swallow failures. Reload problems are the target
// program's to report; they never unwind the editor.
func (p Panel) HookFunc() func() {
	return HookCommand(p.Hook)
}

// HookCommand wraps an arbitrary reload command the same way, for hook
// overrides coming from the preferences file.
func HookCommand(argv []string) func() {
	if len(argv) == 0 {
		return nil
	}
	return func() {
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdout = nil
		cmd.Stderr = nil
		if err := cmd.Start(); err != nil {
			logging.Warn("reload hook failed to start",
				zap.Strings("command", argv),
				zap.Error(err))
			return
		}
		// Reap in the background so the hook never blocks the loop.
		go func() {
			if err := cmd.Wait(); err != nil {
				logging.Debug("reload hook exited with error",
					zap.Strings("command", argv),
					zap.Error(err))
			}
		}()
	}
}
