package helpers

import (
	"os"
	"testing"

	"github.com/objectsync/objectsync/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = logger.Noop()
	os.Exit(m.Run())
}

// Unknown values fold to info so a bad LOG_LEVEL can never panic the level
// parser downstream.
func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, zap.ErrorLevel, GetLogLevel("error"))
	assert.Equal(t, zap.WarnLevel, GetLogLevel("warning"))
	assert.Equal(t, zap.InfoLevel, GetLogLevel("info"))
	assert.Equal(t, zap.DebugLevel, GetLogLevel("debug"))
	assert.Equal(t, zap.InfoLevel, GetLogLevel("verbose"))
	assert.Equal(t, zap.InfoLevel, GetLogLevel(""))
}

func TestLogIfError(t *testing.T) {
	LogIfError(nil)
	LogIfError(errors.New("logged, not raised"))
}
