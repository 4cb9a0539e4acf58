package main

import (
	"os"

	"github.com/objectsync/objectsync/internal/helpers"
	"github.com/objectsync/objectsync/pkg/client"
	"github.com/objectsync/objectsync/pkg/client/commands"
	"github.com/objectsync/objectsync/pkg/configuration"
	"github.com/objectsync/objectsync/pkg/logger"
	"github.com/objectsync/objectsync/pkg/startup"
	"github.com/objectsync/objectsync/pkg/static"
	"github.com/objectsync/objectsync/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var OSCTL_VERSION = "dev"

func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = static.DEFAULT_LOG_LEVEL
	}

	// GetLogLevel folds unknown values to info so the env var can never
	// panic the zap level parser.
	logger.Log = logger.NewLogger(helpers.GetLogLevel(logLevel).String(), []string{"stdout"}, []string{"stderr"})

	startup.ClientFlags()

	conf := configuration.NewConfig()

	if path := viper.GetString("config"); path != "" {
		loaded, err := startup.Load(path)

		if err != nil {
			helpers.PrintAndExit(err, 1)
		}

		conf = loaded
	}

	startup.Apply(conf)

	cli, err := client.New(conf)

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	cli.Version = version.New(OSCTL_VERSION)

	cmd := &cobra.Command{
		Use:   "osctl",
		Short: "Objectsync CLI",
	}

	commands.Run(cli, cmd)
}
