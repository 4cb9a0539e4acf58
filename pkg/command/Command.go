package command

import (
	"github.com/google/uuid"
	"github.com/objectsync/objectsync/pkg/static"
)

func New(method string, path string, body interface{}) *Command {
	return &Command{
		ID:         uuid.New(),
		Method:     method,
		Path:       path,
		Body:       body,
		MaxRetries: static.DEFAULT_MAX_RETRIES,
	}
}

func (cmd *Command) WithToken(token string) *Command {
	cmd.SessionToken = token
	return cmd
}

func (cmd *Command) WithRetries(retries uint64) *Command {
	cmd.MaxRetries = retries
	return cmd
}
