package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/objectsync/objectsync/internal/helpers"
	"github.com/objectsync/objectsync/pkg/client"
	"github.com/objectsync/objectsync/pkg/formaters"
	"github.com/objectsync/objectsync/pkg/objects"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func Get(cli *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get [class] [id]...",
		Short: "Fetch one or more objects and print them",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(context.Background(), cli.Config.APITimeoutDuration())
			defer cancel()

			fetched := make([]*objects.Object, 0, len(args)-1)

			for _, id := range args[1:] {
				obj := objects.New(args[0])
				obj.ID = id

				if err := cli.Fetch(ctx, obj); err != nil {
					helpers.PrintAndExit(err, 1)
				}

				fetched = append(fetched, obj)
			}

			if len(fetched) == 1 {
				formaters.Object(fetched[0])
				return
			}

			formaters.Objects(fetched)
		},
	}
}

func Set(cli *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "set [class] [id] [field=value]...",
		Short: "Assign fields on an object and save",
		Args:  cobra.MinimumNArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			obj := objects.New(args[0])
			obj.ID = args[1]

			for _, pair := range args[2:] {
				field, value, found := strings.Cut(pair, "=")

				if !found {
					helpers.PrintAndExit(errors.Errorf("expected field=value, got '%s'", pair), 1)
				}

				if err := obj.Set(field, value); err != nil {
					helpers.PrintAndExit(err, 1)
				}
			}

			save(cli, obj)
		},
	}
}

func Unset(cli *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "unset [class] [id] [field]...",
		Short: "Delete fields from an object and save",
		Args:  cobra.MinimumNArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			obj := objects.New(args[0])
			obj.ID = args[1]

			for _, field := range args[2:] {
				if err := obj.Unset(field); err != nil {
					helpers.PrintAndExit(err, 1)
				}
			}

			save(cli, obj)
		},
	}
}

func Inc(cli *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "inc [class] [id] [field] [amount]",
		Short: "Increment a numeric field and save",
		Args:  cobra.ExactArgs(4),
		Run: func(cmd *cobra.Command, args []string) {
			amount, err := strconv.ParseFloat(args[3], 64)

			if err != nil {
				helpers.PrintAndExit(errors.Wrap(err, "amount is not a number"), 1)
			}

			obj := objects.New(args[0])
			obj.ID = args[1]

			if err = obj.Increment(args[2], amount); err != nil {
				helpers.PrintAndExit(err, 1)
			}

			save(cli, obj)
		},
	}
}

func save(cli *client.Client, obj *objects.Object) {
	ctx, cancel := context.WithTimeout(context.Background(), cli.Config.APITimeoutDuration())
	defer cancel()

	if err := cli.Save(ctx, obj); err != nil {
		helpers.PrintAndExit(err, 1)
	}

	formaters.Object(obj)
}
