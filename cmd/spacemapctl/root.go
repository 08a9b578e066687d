package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serverAddr string

var rootCmd = &cobra.Command{
	Use:   "spacemapctl",
	Short: "control a running spacemapd viewer",
	Long: `spacemapctl talks to the spacemapd control API: switch scenes,
pick the tracked satellite, adjust render quality, and inspect the
current camera state.`,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spacemapctl: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverAddr, "server", "s", "http://localhost:8080", "spacemapd base URL")
}
