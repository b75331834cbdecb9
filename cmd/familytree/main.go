// Command familytree serves the family tree as a web page and can show it in
// the terminal.
//
// Usage:
//
//	familytree serve [--port 8080] [--log-level info]
//	familytree view
//	familytree print
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	port     string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "familytree",
	Short:         "Browse a family tree",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "", "HTTP port (overrides FAMILYTREE_PORT)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides FAMILYTREE_LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(printCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
