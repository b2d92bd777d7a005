package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "makerhub",
	Short: "Expose maker devices as one AI tool catalog",
	Long: "makerhub connects to a Moonraker 3D printer and an ISY home automation\n" +
		"controller, compiles their commands into one flat tool catalog, and\n" +
		"dispatches calls back to the devices.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.SetVersionTemplate(fmt.Sprintf("makerhub v%s\n", appVersion))
}

func Execute() error {
	rootCmd.Version = appVersion
	return rootCmd.Execute()
}
