package commands

import (
	"github.com/objectsync/objectsync/internal/helpers"
	"github.com/objectsync/objectsync/pkg/client"
	"github.com/spf13/cobra"
)

func Run(cli *client.Client, root *cobra.Command) {
	root.AddCommand(
		Version(cli),
		Config(cli),
		Context(cli),
		Get(cli),
		Set(cli),
		Unset(cli),
		Inc(cli),
		Current(cli),
	)

	if err := root.Execute(); err != nil {
		helpers.PrintAndExit(err, 1)
	}
}
