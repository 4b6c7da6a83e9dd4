package main

import (
	"encoding/json"
	"fmt"

	"github.com/simkit-dev/modelcheck/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of modelcheck",
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := version.Get()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Full())
		return err
	},
}

func init() {
	versionCmd.Flags().Bool("json", false, "Print build information as JSON")
	rootCmd.AddCommand(versionCmd)
}
