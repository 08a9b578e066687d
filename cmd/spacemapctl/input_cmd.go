package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

var dragCmd = &cobra.Command{
	Use:   "drag [dx] [dy]",
	Short: "send a pointer-drag delta to the orbit camera",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dx, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		dy, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		return doJSON("POST", "/v1/input/drag", map[string]float64{"dx": dx, "dy": dy}, nil)
	},
}

var scrollCmd = &cobra.Command{
	Use:   "scroll [delta]",
	Short: "send a scroll delta to the orbit camera",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		return doJSON("POST", "/v1/input/scroll", map[string]float64{"delta": delta}, nil)
	},
}

func init() {
	rootCmd.AddCommand(dragCmd)
	rootCmd.AddCommand(scrollCmd)
}
