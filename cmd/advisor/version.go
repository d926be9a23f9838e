package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/advisor"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of advisor",
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "advisor version %s\n", strings.TrimSpace(advisor.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
