package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "show the current frame state",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out map[string]any
		if err := doJSON("GET", "/v1/status", nil, &out); err != nil {
			return err
		}
		pretty, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(pretty))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
