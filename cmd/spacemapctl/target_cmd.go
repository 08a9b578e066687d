package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var targetCmd = &cobra.Command{
	Use:   "target [satellite name]",
	Short: "select the tracked satellite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out map[string]any
		if err := doJSON("PUT", "/v1/target", map[string]string{"name": args[0]}, &out); err != nil {
			return err
		}
		fmt.Printf("tracking: %v\n", out["tracked_satellite"])
		return nil
	},
}

var satellitesCmd = &cobra.Command{
	Use:     "satellites",
	Aliases: []string{"sats"},
	Short:   "list satellites known to the viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out struct {
			Satellites []struct {
				Name    string `json:"name"`
				NoradID uint32 `json:"norad_id"`
			} `json:"satellites"`
		}
		if err := doJSON("GET", "/v1/satellites", nil, &out); err != nil {
			return err
		}
		for _, sat := range out.Satellites {
			fmt.Printf("%-24s %5d\n", sat.Name, sat.NoradID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(satellitesCmd)
}
