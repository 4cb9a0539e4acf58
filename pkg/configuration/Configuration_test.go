package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsValidate(t *testing.T) {
	config := NewConfig()

	assert.NoError(t, config.Validate())
	assert.Equal(t, time.Second, config.RetryIntervalDuration())
	assert.Equal(t, 30*time.Second, config.APITimeoutDuration())
}

func TestValidateRejectsBadValues(t *testing.T) {
	for _, mutate := range []func(*Configuration){
		func(c *Configuration) { c.API = "" },
		func(c *Configuration) { c.API = "not-a-url" },
		func(c *Configuration) { c.ApplicationID = "" },
		func(c *Configuration) { c.BatchSize = 0 },
		func(c *Configuration) { c.RetryInterval = "" },
	} {
		config := NewConfig()
		mutate(config)

		assert.Error(t, config.Validate())
	}
}

func TestDurationFallbacks(t *testing.T) {
	config := NewConfig()
	config.RetryInterval = "garbage"
	config.APITimeout = "garbage"

	assert.Equal(t, time.Second, config.RetryIntervalDuration())
	assert.Equal(t, 30*time.Second, config.APITimeoutDuration())
}
