package commands

import (
	"fmt"

	"github.com/objectsync/objectsync/internal/helpers"
	"github.com/objectsync/objectsync/pkg/client"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func Config(cli *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out, err := yaml.Marshal(cli.Config)

			if err != nil {
				helpers.PrintAndExit(err, 1)
			}

			fmt.Print(string(out))
		},
	}
}
