package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName   = "duskytune"
	prefsFile = "prefs.yaml"

	// currentVersion is bumped only on incompatible schema changes.
	currentVersion = 1
)

// PanelPrefs overrides one panel's wiring. Empty fields keep the panel's
// built-in defaults.
type PanelPrefs struct {
	// Config replaces the panel's default config file path.
	Config string `yaml:"config,omitempty"`
	// Hook replaces the panel's reload command. A single "-" disables the
	// hook for this panel entirely.
	Hook []string `yaml:"hook,omitempty,flow"`
}

// Prefs is the persisted preference set.
type Prefs struct {
	Version int `yaml:"version"`

	// Window is the number of setting rows visible at once.
	Window int `yaml:"window,omitempty"`
	// SeqTimeoutMS is the idle timeout, in milliseconds, after which a lone
	// ESC byte is treated as the Escape key rather than a sequence prefix.
	SeqTimeoutMS int `yaml:"seq_timeout_ms,omitempty"`
	// NoHook suppresses all post-write reload hooks.
	NoHook bool `yaml:"no_hook,omitempty"`

	Panels map[string]*PanelPrefs `yaml:"panels,omitempty"`
}

// Default returns the preferences used when no file exists.
func Default() *Prefs {
	return &Prefs{
		Version: currentVersion,
		Panels:  make(map[string]*PanelPrefs),
	}
}

// Panel returns the override block for the named panel, never nil.
func (p *Prefs) Panel(name string) *PanelPrefs {
	if pp, ok := p.Panels[name]; ok && pp != nil {
		return pp
	}
	return &PanelPrefs{}
}

// Dir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/duskytune or $HOME/.config/duskytune
//   - macOS: $HOME/.config/duskytune
//   - Windows: %LOCALAPPDATA%\duskytune
func Dir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// Path returns the full path of the preferences file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, prefsFile), nil
}

// Load reads the preferences file. A missing file is not an error; it
// yields the defaults.
func Load() (*Prefs, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if p.Version != currentVersion {
		return nil, fmt.Errorf("unsupported preferences version: %d (expected %d)", p.Version, currentVersion)
	}
	if p.Panels == nil {
		p.Panels = make(map[string]*PanelPrefs)
	}
	return &p, nil
}

// Save writes the preferences atomically: marshal, write a sibling temp
// file, rename over the target.
func (p *Prefs) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	path := filepath.Join(dir, prefsFile)

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	header := []byte(`# duskytune preferences
# Editor chrome only; the settings themselves stay in each tool's config.

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary preferences file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
