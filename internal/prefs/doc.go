// Package prefs loads and saves the user's duskytune preferences file.
//
// Preferences live in the XDG config directory as YAML and cover the
// editor chrome only: window height, escape sequence timing, and per-panel
// overrides for config paths and reload hooks. The settings being edited
// never live here; those stay in each tool's own config file.
package prefs
