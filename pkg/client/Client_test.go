package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/objectsync/objectsync/pkg/configuration"
	"github.com/objectsync/objectsync/pkg/logger"
	"github.com/objectsync/objectsync/pkg/objects"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Log = logger.Noop()
	os.Exit(m.Run())
}

func TestNewCreatesDirectoryStructure(t *testing.T) {
	conf := configuration.NewConfig()
	conf.RootDir = t.TempDir()

	_, err := New(conf)
	assert.NoError(t, err)

	for _, dir := range []string{"config", "store", "logs"} {
		info, err := os.Stat(filepath.Join(conf.RootDir, dir))
		assert.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestNewInMemoryTouchesNoDisk(t *testing.T) {
	conf := configuration.NewConfig()
	conf.RootDir = filepath.Join(t.TempDir(), "never-created")
	conf.InMemory = true

	_, err := New(conf)
	assert.NoError(t, err)

	_, err = os.Stat(conf.RootDir)
	assert.True(t, os.IsNotExist(err))
}

func TestCurrentUserRoundTrip(t *testing.T) {
	conf := configuration.NewConfig()
	conf.InMemory = true

	cli, err := New(conf)
	assert.NoError(t, err)

	obj := objects.New("_User")
	obj.ID = "u1"
	assert.NoError(t, obj.Set("name", "alice"))

	assert.NoError(t, cli.SetCurrentUser(obj))

	revived, err := cli.GetCurrentUser()
	assert.NoError(t, err)
	assert.Equal(t, "u1", revived.ID)
	assert.Equal(t, "alice", revived.Get("name"))

	assert.NoError(t, cli.ClearCurrentUser())

	revived, err = cli.GetCurrentUser()
	assert.NoError(t, err)
	assert.Nil(t, revived)
}
