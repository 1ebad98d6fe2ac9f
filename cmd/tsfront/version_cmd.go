package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of tsfront",
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat(cmd) == "json" {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
			}
			data, err := getOutputJSON(info, useColor())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "tsfront %s (commit %s, built %s)\n", version, commit, date)
		return nil
	},
}

func init() {
	versionCmd.Flags().StringP("output", "o", "", "output format: text or json")
}
