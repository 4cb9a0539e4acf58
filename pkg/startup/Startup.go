package startup

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/objectsync/objectsync/internal/helpers"
	"github.com/objectsync/objectsync/pkg/configuration"
	"github.com/objectsync/objectsync/pkg/static"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func Load(path string) (*configuration.Configuration, error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer func() {
		file.Close()
	}()

	configObj := configuration.NewConfig()

	viper.SetConfigType("yaml")
	err = viper.ReadConfig(file)

	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(configObj)

	if err != nil {
		return nil, err
	}

	return configObj, err
}

func Save(configObj *configuration.Configuration, path string) error {
	yamlObj, err := yaml.Marshal(*configObj)

	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	return os.WriteFile(path, yamlObj, 0644)
}

func ClientFlags() {
	flag.String("config", "", "Path to a yaml configuration file")
	flag.String("api", "", "Object store API URL")
	flag.String("app", "", "Application identifier")
	flag.String("key", "", "Client key")
	flag.String("root", "", "Client root directory")
	flag.String("log", static.DEFAULT_LOG_LEVEL, "Log level")
	flag.Int("batch-size", static.DEFAULT_BATCH_SIZE, "Commands per batch exchange")
	flag.Bool("in-memory", false, "Keep the current-object store in memory only")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	helpers.LogIfError(viper.BindPFlags(pflag.CommandLine))
}

// Apply overlays any flags the user set onto the configuration.
func Apply(configObj *configuration.Configuration) {
	if api := viper.GetString("api"); api != "" {
		configObj.API = api
	}

	if app := viper.GetString("app"); app != "" {
		configObj.ApplicationID = app
	}

	if key := viper.GetString("key"); key != "" {
		configObj.ClientKey = key
	}

	if root := viper.GetString("root"); root != "" {
		configObj.RootDir = root
	}

	if batchSize := viper.GetInt("batch-size"); batchSize > 0 {
		configObj.BatchSize = batchSize
	}

	if viper.GetBool("in-memory") {
		configObj.InMemory = true
	}
}
