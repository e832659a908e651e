package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillsync-cli/skillsync/pkg/presenter"
	"github.com/skillsync-cli/skillsync/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()

		if jsonOutput, err := cmd.Flags().GetBool("json"); err == nil && jsonOutput {
			output, err := info.JSON()
			if err != nil {
				presenter.Error(err, "Failed to marshal version info")
				os.Exit(1)
			}
			fmt.Println(output)
			return
		}

		fmt.Println(info.String())
	},
}

func init() {
	versionCmd.Flags().Bool("json", false, "Output version information as JSON")
	rootCmd.AddCommand(versionCmd)
}
