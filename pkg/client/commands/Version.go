package commands

import (
	"fmt"

	"github.com/objectsync/objectsync/pkg/client"
	"github.com/spf13/cobra"
)

func Version(cli *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(cli.Version.String())
		},
	}
}
