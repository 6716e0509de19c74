package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "qmltui",
	Short: "Present QML documents on the terminal",
	Long: `qmltui parses a restricted QML subset and presents the document on the
terminal: drawn on a character grid, dumped as draw operations, or run as
an interactive prompt session.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// documentPath picks the document to present: an explicit argument wins,
// otherwise a qml/Main.qml next to the binary, then one level up (build
// tree layout), then the bare relative path as a last resort.
func documentPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	fallback := filepath.Join("qml", "Main.qml")
	exe, err := os.Executable()
	if err != nil {
		return fallback
	}
	exeDir := filepath.Dir(exe)

	sibling := filepath.Join(exeDir, "qml", "Main.qml")
	if _, err := os.Stat(sibling); err == nil {
		return sibling
	}
	parent := filepath.Join(exeDir, "..", "qml", "Main.qml")
	if _, err := os.Stat(parent); err == nil {
		return filepath.Clean(parent)
	}
	return fallback
}
