package configuration

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/objectsync/objectsync/pkg/static"
)

func NewConfig() *Configuration {
	home, err := os.UserHomeDir()

	if err != nil {
		home = os.TempDir()
	}

	return &Configuration{
		API:           "http://localhost:1337",
		ApplicationID: "objectsync",
		RootDir:       filepath.Join(home, "."+static.ROOTDIR),
		LogLevel:      static.DEFAULT_LOG_LEVEL,
		BatchSize:     static.DEFAULT_BATCH_SIZE,
		MaxRetries:    static.DEFAULT_MAX_RETRIES,
		RetryInterval: static.DEFAULT_RETRY_INTERVAL,
		APITimeout:    static.DEFAULT_API_TIMEOUT,
	}
}

func (c *Configuration) Validate() error {
	return validator.New().Struct(c)
}

func (c *Configuration) RetryIntervalDuration() time.Duration {
	interval, err := time.ParseDuration(c.RetryInterval)

	if err != nil {
		interval, _ = time.ParseDuration(static.DEFAULT_RETRY_INTERVAL)
	}

	return interval
}

func (c *Configuration) APITimeoutDuration() time.Duration {
	timeout, err := time.ParseDuration(c.APITimeout)

	if err != nil {
		timeout, _ = time.ParseDuration(static.DEFAULT_API_TIMEOUT)
	}

	return timeout
}
