package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exploreTracking bool

var sceneCmd = &cobra.Command{
	Use:   "scene [globe|tracking|explore]",
	Short: "switch the active scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{"scene": args[0]}
		if cmd.Flags().Changed("track") {
			body["explore_tracking"] = exploreTracking
		}
		var out map[string]any
		if err := doJSON("PUT", "/v1/scene", body, &out); err != nil {
			return err
		}
		fmt.Printf("scene: %v\n", out["scene"])
		return nil
	},
}

var qualityCmd = &cobra.Command{
	Use:   "quality [debug|low|high]",
	Short: "set the render quality tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out map[string]any
		if err := doJSON("PUT", "/v1/quality", map[string]string{"quality": args[0]}, &out); err != nil {
			return err
		}
		fmt.Printf("quality: %v (texture set %v, %v segments)\n",
			out["quality"], out["texture_set"], out["sphere_segments"])
		return nil
	},
}

func init() {
	sceneCmd.Flags().BoolVar(&exploreTracking, "track", false, "orbit the tracked satellite in the explore scene")
	rootCmd.AddCommand(sceneCmd)
	rootCmd.AddCommand(qualityCmd)
}
