// Duskytune is a terminal settings editor for the Dusky Hyprland desktop.
//
// It edits brace-scoped config files (hyprland.conf and friends) in place,
// changing only the value span of the targeted line, and reloads the owning
// program after each write.
//
// Usage:
//
//	duskytune <panel> [flags]
//
// See 'duskytune --help' for the available panels.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duskydots/duskytune/internal/tui"
	"github.com/duskydots/duskytune/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// A signal ending the editor is a controlled shutdown; exit with
		// the conventional status and no error noise.
		var sigErr *tui.SignalError
		if errors.As(err, &sigErr) {
			os.Exit(sigErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duskytune",
	Short: "Dusky desktop settings editor",
	Long: `An interactive terminal editor for the Dusky Hyprland configuration.

Each panel binds the editor to one config file. Writes touch only the
changed line and the owning program is reloaded afterwards.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("duskytune %s\n", version.Full())
	},
}
