package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var Version = "local-build"

func GetVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Long:  `Shows the version of the psim command line tool.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(Version)
		},
	}
}
