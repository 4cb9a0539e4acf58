package commands

import (
	"fmt"

	"github.com/objectsync/objectsync/internal/helpers"
	"github.com/objectsync/objectsync/pkg/client"
	"github.com/objectsync/objectsync/pkg/formaters"
	"github.com/objectsync/objectsync/pkg/objects"
	"github.com/spf13/cobra"
)

func Current(cli *client.Client) *cobra.Command {
	current := &cobra.Command{
		Use:   "current",
		Short: "Inspect the persisted current user",
	}

	current.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the persisted current user",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			snapshot, err := cli.CurrentUser.Get()

			if err != nil {
				helpers.PrintAndExit(err, 1)
			}

			if snapshot == nil {
				fmt.Println("no current user")
				return
			}

			obj, err := objects.FromSnapshot(snapshot)

			if err != nil {
				helpers.PrintAndExit(err, 1)
			}

			formaters.Snapshot(snapshot)
			formaters.Object(obj)
		},
	})

	current.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the persisted current user",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := cli.ClearCurrentUser(); err != nil {
				helpers.PrintAndExit(err, 1)
			}

			fmt.Println("current user cleared")
		},
	})

	return current
}
