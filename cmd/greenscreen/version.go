package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	greenscreen "github.com/greenscreenhq/greenscreen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of greenscreen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("greenscreen version %s\n", strings.TrimSpace(greenscreen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
