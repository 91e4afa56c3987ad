package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wisptech/uisp-zabbix-sync/version"
)

// NewVersionCmd builds the 'version' command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}
}
