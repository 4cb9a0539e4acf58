package commands

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/objectsync/objectsync/internal/helpers"
	"github.com/objectsync/objectsync/pkg/client"
	"github.com/objectsync/objectsync/pkg/network"
	"github.com/objectsync/objectsync/pkg/startup"
	"github.com/objectsync/objectsync/pkg/static"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Context manages the persisted API target so subsequent invocations talk to
// the same server without repeating flags.
func Context(cli *client.Client) *cobra.Command {
	contextCmd := &cobra.Command{
		Use:   "context",
		Short: "Manage the API target",
	}

	contextCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the active API target",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s (application %s)\n", cli.Config.API, cli.Config.ApplicationID)
		},
	})

	contextCmd.AddCommand(&cobra.Command{
		Use:   "ping",
		Short: "Check that the API target is reachable",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(context.Background(), cli.Config.APITimeoutDuration())
			defer cancel()

			resp, err := network.Raw(ctx, cli.Http, cli.Config.API+"/health", http.MethodGet, nil)

			if err != nil {
				helpers.PrintAndExit(err, 1)
			}

			defer resp.Body.Close()

			fmt.Printf("%s responded with %s\n", cli.Config.API, resp.Status)
		},
	})

	contextCmd.AddCommand(&cobra.Command{
		Use:   "set [api-url]",
		Short: "Point the client at an API and persist the configuration",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cli.Config.API = args[0]

			if err := cli.Config.Validate(); err != nil {
				helpers.PrintAndExit(err, 1)
			}

			path := viper.GetString("config")

			if path == "" {
				path = filepath.Join(cli.Config.RootDir, static.CONFIGDIR, "config.yaml")
			}

			if err := startup.Save(cli.Config, path); err != nil {
				helpers.PrintAndExit(err, 1)
			}

			fmt.Printf("context saved to %s\n", path)
		},
	})

	return contextCmd
}
