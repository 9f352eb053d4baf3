package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "trackside",
	Short: "Vehicle slip angle telemetry analyzer",
	Long: `trackside derives tire slip angles and a balance metric from vehicle
telemetry using a bicycle model, either from a recorded CSV session or from a
live MQTT feed.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
